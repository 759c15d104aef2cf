// Package docstring parses free-text docstrings into structured records.
//
// Two field-list dialects are recognized: Sphinx/reST markers (":param x:",
// ":returns:", ":raises E:") and Google-style section headers ("Args:",
// "Returns:", "Raises:"). Text with neither becomes a record with only the
// description populated. Parsing never fails: malformed input degrades to
// plain description text.
package docstring

import (
	"strings"

	"github.com/example/exdoc"
)

// Parse converts raw docstring text into a DocRecord.
//
// Dialect detection is heuristic: Sphinx markers win over Google headers,
// and text with neither yields a record whose Description is the trimmed
// input with all other fields empty.
func Parse(text string) *exdoc.DocRecord {
	switch {
	case sphinxTag.MatchString(text):
		return parseSphinx(text)
	case isGoogle(text):
		return parseGoogle(text)
	default:
		return &exdoc.DocRecord{Description: strings.TrimSpace(text)}
	}
}

// joinLines collapses a multi-line field body into a single line: every line
// is trimmed, blanks are dropped, and the rest joins with single spaces so
// the value renders cleanly as a one-line template field.
func joinLines(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// fieldCollector accumulates field entries shared by both dialects.
//
// Parameter order is first-mention order: a ":type x:" seen before
// ":param x:" fixes x's position. Type entries whose name never appears as a
// parameter are dropped when the record is built.
type fieldCollector struct {
	order  []string
	params map[string]*exdoc.ParamDoc // nil Description marks type-only mentions
	docSet map[string]bool

	retDoc  string
	retType string
	hasRet  bool

	exc []exdoc.ExcDoc
}

func newFieldCollector() *fieldCollector {
	return &fieldCollector{
		params: map[string]*exdoc.ParamDoc{},
		docSet: map[string]bool{},
	}
}

func (c *fieldCollector) param(name string) *exdoc.ParamDoc {
	p, ok := c.params[name]
	if !ok {
		p = &exdoc.ParamDoc{Name: name}
		c.params[name] = p
		c.order = append(c.order, name)
	}
	return p
}

func (c *fieldCollector) addParam(name, doc string) {
	c.param(name).Description = doc
	c.docSet[name] = true
}

func (c *fieldCollector) addType(name, typ string) {
	if typ != "" {
		c.param(name).Type = &typ
	}
}

func (c *fieldCollector) addReturn(doc string) {
	c.retDoc = doc
	c.hasRet = true
}

func (c *fieldCollector) addReturnType(typ string) {
	c.retType = typ
	c.hasRet = true
}

func (c *fieldCollector) addExc(name, doc string) {
	// Duplicates are kept: the same error may be documented twice with
	// different conditions.
	c.exc = append(c.exc, exdoc.ExcDoc{Name: name, Description: doc})
}

func (c *fieldCollector) record(description string) *exdoc.DocRecord {
	rec := &exdoc.DocRecord{Description: description, Exceptions: c.exc}

	for _, name := range c.order {
		if !c.docSet[name] {
			continue // type annotation with no matching param
		}
		rec.Parameters = append(rec.Parameters, *c.params[name])
	}

	if c.hasRet {
		rec.Return = &exdoc.ReturnDoc{Description: c.retDoc}
		if c.retType != "" {
			rec.Return.Type = &c.retType
		}
	}
	return rec
}
