// Package gormdoc documents live GORM models.
//
// Doc reads a model struct through gorm's schema reflection and reshapes the
// result into an exdoc.ModelDoc: tables, primary and unique keys, foreign
// keys, columns in field-declaration order, and relationships. Column
// comments come from the gorm "comment" tag, enriched with constraint
// phrases derived from the "validate" tag when one is present.
package gormdoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/example/exdoc"
	"github.com/example/exdoc/gosource"
	"github.com/example/exdoc/internal/constraint"
)

// ErrNotModel is returned when the value cannot be parsed as a mapped model.
var ErrNotModel = errors.New("not a mapped model")

var (
	cacheStore = &sync.Map{}
	namer      = schema.NamingStrategy{IdentifierMaxLength: 64}

	constraintsMu sync.Mutex
	constraints   = constraint.NewMapper()
)

// RegisterValidator attaches a human-readable description to a custom
// validate-tag name, the way custom validators are registered on the
// validator itself.
func RegisterValidator(name, description string) {
	constraintsMu.Lock()
	defer constraintsMu.Unlock()
	constraints.Register(name, description)
}

// Option adjusts how a model is documented.
type Option func(*config)

type config struct {
	source *gosource.Package
}

// WithSource supplies the parsed source package the model struct is declared
// in, so the struct's own doc comment becomes the model description. Runtime
// reflection cannot see comments, so this is opt-in.
func WithSource(pkg *gosource.Package) Option {
	return func(c *config) { c.source = pkg }
}

// Doc documents a GORM model given a live (typically zero) struct value.
// A value that gorm cannot map to a schema is the hard-failure case and
// returns ErrNotModel.
func Doc(model any, opts ...Option) (*exdoc.ModelDoc, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil value", ErrNotModel)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := schema.Parse(model, cacheStore, namer)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrNotModel, model, err)
	}

	doc := &exdoc.ModelDoc{
		Name:      s.Name,
		Tables:    []string{s.Table},
		Primary:   primaryKey(s),
		Unique:    uniqueKeys(s),
		Foreign:   foreignKeys(s),
		Columns:   columns(s),
		Relations: relations(s),
	}

	if cfg.source != nil {
		if td, err := cfg.source.DocType(s.Name); err == nil {
			doc.Description = td.ClassDoc
		}
	}
	return doc, nil
}

func primaryKey(s *schema.Schema) []string {
	keys := make([]string, 0, len(s.PrimaryFields))
	for _, f := range s.PrimaryFields {
		keys = append(keys, f.DBName)
	}
	return keys
}

// uniqueKeys lists single-column unique fields in declaration order, then
// composite unique indexes by index name.
func uniqueKeys(s *schema.Schema) [][]string {
	var keys [][]string
	for _, f := range s.Fields {
		if f.Unique && !f.PrimaryKey {
			keys = append(keys, []string{f.DBName})
		}
	}

	indexes := s.ParseIndexes()
	names := make([]string, 0, len(indexes))
	for name, idx := range indexes {
		if strings.EqualFold(idx.Class, "UNIQUE") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		idx := indexes[name]
		cols := make([]string, 0, len(idx.Fields))
		for _, opt := range idx.Fields {
			cols = append(cols, opt.DBName)
		}
		keys = append(keys, cols)
	}
	return keys
}

// foreignKeys emits one entry per reference whose key column lives on this
// model's table.
func foreignKeys(s *schema.Schema) []exdoc.ForeignKeyDoc {
	var fks []exdoc.ForeignKeyDoc
	for _, f := range s.Fields {
		rel, ok := s.Relationships.Relations[f.Name]
		if !ok {
			continue
		}

		onUpdate, onDelete := "", ""
		if c := rel.ParseConstraint(); c != nil {
			onUpdate, onDelete = c.OnUpdate, c.OnDelete
		}

		for _, ref := range rel.References {
			if ref.OwnPrimaryKey || ref.ForeignKey == nil || ref.ForeignKey.Schema != s {
				continue
			}
			fks = append(fks, exdoc.ForeignKeyDoc{
				Column:   ref.ForeignKey.DBName,
				Target:   rel.FieldSchema.Table + "." + ref.PrimaryKey.DBName,
				OnUpdate: onUpdate,
				OnDelete: onDelete,
			})
		}
	}
	return fks
}

func columns(s *schema.Schema) []exdoc.ColumnDoc {
	var cols []exdoc.ColumnDoc
	for _, f := range s.Fields {
		if f.DBName == "" || f.DataType == "" {
			continue
		}

		col := exdoc.ColumnDoc{
			Key:         f.DBName,
			Type:        columnType(f),
			Description: columnDoc(f),
		}
		if f.DefaultValue != "" {
			v := f.DefaultValue
			col.Default = &v
		}
		cols = append(cols, col)
	}
	return cols
}

// columnType renders the canonical textual type including nullability:
// "STRING(32) NOT NULL", "INT NULL".
func columnType(f *schema.Field) string {
	base := strings.ToUpper(string(f.DataType))
	if f.Size > 0 && !strings.Contains(base, "(") {
		base = fmt.Sprintf("%s(%d)", base, f.Size)
	}
	if f.NotNull || f.PrimaryKey {
		return base + " NOT NULL"
	}
	return base + " NULL"
}

func columnDoc(f *schema.Field) string {
	doc := f.Comment

	if tag := f.StructField.Tag.Get("validate"); tag != "" {
		constraintsMu.Lock()
		phrases := constraints.Describe(tag)
		constraintsMu.Unlock()
		if len(phrases) > 0 {
			suffix := "(" + strings.Join(phrases, ", ") + ")"
			if doc == "" {
				return suffix
			}
			return doc + " " + suffix
		}
	}
	return doc
}

// relations walks relationship fields in declaration order. Collection
// relationships (has-many, many-to-many) mark the key with a "[]" suffix;
// the target renders as Model(local=remote, ...) with identical pair names
// collapsed.
func relations(s *schema.Schema) []exdoc.RelationDoc {
	var rels []exdoc.RelationDoc
	for _, f := range s.Fields {
		rel, ok := s.Relationships.Relations[f.Name]
		if !ok || rel.FieldSchema == nil {
			continue
		}

		key := f.Name
		if rel.Type == schema.HasMany || rel.Type == schema.Many2Many {
			key += "[]"
		}

		var pairs []string
		for _, ref := range rel.References {
			if ref.PrimaryKey == nil || ref.ForeignKey == nil {
				continue
			}
			local, remote := ref.ForeignKey.DBName, ref.PrimaryKey.DBName
			if ref.OwnPrimaryKey {
				local, remote = ref.PrimaryKey.DBName, ref.ForeignKey.DBName
			}
			if local == remote {
				pairs = append(pairs, local)
			} else {
				pairs = append(pairs, local+"="+remote)
			}
		}

		rels = append(rels, exdoc.RelationDoc{
			Key:         key,
			Model:       rel.FieldSchema.Name,
			Target:      fmt.Sprintf("%s(%s)", rel.FieldSchema.Name, strings.Join(pairs, ", ")),
			Description: f.Comment,
		})
	}
	return rels
}
