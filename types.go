// Package exdoc defines the structures that documentation collectors fill in
// and callers serialize.
//
// The shapes here are deliberately plain: maps of strings and sequences,
// ready for encoding/json or yaml.Marshal. Collectors live in the
// subpackages: docstring parses field-list text, gosource documents parsed Go
// declarations, gormdoc documents live GORM models.
package exdoc

// DocRecord is the structured form of a parsed docstring.
type DocRecord struct {
	// Description is the free-form text preceding any field markers. For a
	// docstring with no recognized markers it holds the whole trimmed text.
	Description string `json:"description" yaml:"description"`
	// Parameters appear in first-mention order, never alphabetical.
	Parameters []ParamDoc `json:"parameters" yaml:"parameters"`
	Return     *ReturnDoc `json:"return" yaml:"return"`
	Exceptions []ExcDoc   `json:"exceptions" yaml:"exceptions"`
}

// ParamDoc documents a single parameter.
type ParamDoc struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Type        *string `json:"declared_type" yaml:"declared_type"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"`
}

// ReturnDoc documents a return value.
type ReturnDoc struct {
	Description string  `json:"description" yaml:"description"`
	Type        *string `json:"declared_type" yaml:"declared_type"`
}

// ExcDoc documents one error condition. The same name may appear more than
// once when a docstring documents distinct conditions for it.
type ExcDoc struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ObjectDoc is a DocRecord merged with the identity of the documented object.
type ObjectDoc struct {
	Module    string `json:"module" yaml:"module"`
	Name      string `json:"name" yaml:"name"`
	QualName  string `json:"qualified_name" yaml:"qualified_name"`
	Signature string `json:"signature" yaml:"signature"`
	// ClassDoc carries the type's own description when the object is a type
	// whose Description came from its constructor.
	ClassDoc string `json:"class_description,omitempty" yaml:"class_description,omitempty"`

	DocRecord `yaml:",inline"`
}

// ModelDoc describes an ORM model: its tables, keys, columns and relations.
type ModelDoc struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Tables      []string        `json:"tables" yaml:"tables"`
	Primary     []string        `json:"primary_key" yaml:"primary_key"`
	Unique      [][]string      `json:"unique_keys" yaml:"unique_keys"`
	Foreign     []ForeignKeyDoc `json:"foreign_keys" yaml:"foreign_keys"`
	Columns     []ColumnDoc     `json:"columns" yaml:"columns"`
	Relations   []RelationDoc   `json:"relations" yaml:"relations"`
}

// ForeignKeyDoc describes one foreign-key reference.
type ForeignKeyDoc struct {
	Column   string `json:"column" yaml:"column"`
	Target   string `json:"target" yaml:"target"`
	OnUpdate string `json:"on_update,omitempty" yaml:"on_update,omitempty"`
	OnDelete string `json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
}

// ColumnDoc describes one mapped column. Type is the canonical database type
// including nullability, e.g. "INTEGER NOT NULL".
type ColumnDoc struct {
	Key         string  `json:"key" yaml:"key"`
	Type        string  `json:"type" yaml:"type"`
	Description string  `json:"description" yaml:"description"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"`
}

// RelationDoc describes one declared relationship. Collection-valued
// relationships carry a "[]" suffix on Key; this is a rendering convention
// for downstream templates, not a type.
type RelationDoc struct {
	Key         string `json:"key" yaml:"key"`
	Model       string `json:"target_model" yaml:"target_model"`
	Target      string `json:"target_description" yaml:"target_description"`
	Description string `json:"description" yaml:"description"`
}
