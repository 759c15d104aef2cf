package gosource

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"strings"

	"github.com/example/exdoc"
	"github.com/example/exdoc/docstring"
)

// Doc documents the named object. Resolution runs a fixed priority chain:
// empty name or the package name documents the package; a plain name
// resolves as function, then type; "Type.Member" resolves as method, then
// struct field. An unresolvable name is the one hard failure of this
// package.
func (p *Package) Doc(name string) (*exdoc.ObjectDoc, error) {
	if name == "" || name == p.Name {
		return p.DocPackage(), nil
	}

	if recv, member, ok := strings.Cut(name, "."); ok {
		if doc, err := p.DocMethod(recv, member); err == nil {
			return doc, nil
		}
		return p.DocField(recv, member)
	}

	if _, ok := p.funcs[name]; ok {
		return p.DocFunc(name)
	}
	if ti, ok := p.types[name]; ok && ti.spec != nil {
		return p.DocType(name)
	}
	return nil, fmt.Errorf("%w: %q in package %s", ErrNotFound, name, p.Name)
}

// DocFunc documents a top-level function.
func (p *Package) DocFunc(name string) (*exdoc.ObjectDoc, error) {
	fn, ok := p.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %q in package %s", ErrNotFound, name, p.Name)
	}
	return p.callableDoc(fn, name, name), nil
}

// DocMethod documents a method. The receiver argument resolves the owning
// type and the qualified name; it has no effect on docstring parsing.
func (p *Package) DocMethod(receiver, name string) (*exdoc.ObjectDoc, error) {
	ti, ok := p.types[receiver]
	if !ok {
		return nil, fmt.Errorf("%w: type %q in package %s", ErrNotFound, receiver, p.Name)
	}
	fn, ok := ti.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: method %q on %s", ErrNotFound, name, receiver)
	}
	return p.callableDoc(fn, name, receiver+"."+name), nil
}

// DocField documents a struct field. Fields behave like properties: doc text
// only, no parameters, the field name as signature.
func (p *Package) DocField(receiver, name string) (*exdoc.ObjectDoc, error) {
	ti, ok := p.types[receiver]
	if !ok || ti.strct == nil {
		return nil, fmt.Errorf("%w: struct type %q in package %s", ErrNotFound, receiver, p.Name)
	}
	for _, f := range ti.fields {
		if f.name != name {
			continue
		}
		doc := &exdoc.ObjectDoc{
			Module:    p.Name,
			Name:      name,
			QualName:  receiver + "." + name,
			Signature: name,
			DocRecord: *docstring.Parse(f.doc),
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: field %q on %s", ErrNotFound, name, receiver)
}

// DocType documents a type declaration. When a New<Type> constructor
// exists its docstring and signature describe construction, and the type's
// own comment is kept separately as ClassDoc. A type whose constructor has
// no comment of its own may document the parameters in the type comment
// instead.
func (p *Package) DocType(name string) (*exdoc.ObjectDoc, error) {
	ti, ok := p.types[name]
	if !ok || ti.spec == nil {
		return nil, fmt.Errorf("%w: type %q in package %s", ErrNotFound, name, p.Name)
	}

	classText := strings.TrimSpace(ti.doc)

	ctor, hasCtor := p.funcs["New"+name]
	if !hasCtor {
		rec := docstring.Parse(ti.doc)
		return &exdoc.ObjectDoc{
			Module:    p.Name,
			Name:      name,
			QualName:  name,
			Signature: name,
			ClassDoc:  rec.Description,
			DocRecord: *rec,
		}, nil
	}

	doc := p.callableDoc(ctor, ctor.Name.Name, ctor.Name.Name)
	doc.Name = name
	doc.QualName = name
	doc.ClassDoc = classText
	if ctor.Doc == nil {
		// Constructor documented in the type comment.
		rec := docstring.Parse(ti.doc)
		doc.DocRecord = *mergeParams(rec, ctor.Type, p.render)
		doc.ClassDoc = ""
	}
	return doc, nil
}

// DocPackage documents the package itself.
func (p *Package) DocPackage() *exdoc.ObjectDoc {
	return &exdoc.ObjectDoc{
		Module:    p.Name,
		Name:      p.Name,
		QualName:  p.Name,
		DocRecord: *docstring.Parse(p.doc),
	}
}

// callableDoc merges a function's parsed docstring with its signature.
func (p *Package) callableDoc(fn *ast.FuncDecl, name, qualName string) *exdoc.ObjectDoc {
	text := ""
	if fn.Doc != nil {
		text = fn.Doc.Text()
	}
	rec := mergeParams(docstring.Parse(text), fn.Type, p.render)

	return &exdoc.ObjectDoc{
		Module:    p.Name,
		Name:      name,
		QualName:  qualName,
		Signature: p.signature(fn.Name.Name, fn.Type),
		DocRecord: *rec,
	}
}

// mergeParams reconciles docstring parameters with the declared signature.
// The signature is authoritative for presence: parameters it declares appear
// even when undocumented (empty description, nil type), and documented names
// it does not declare are dropped. The docstring is authoritative for
// descriptions and types. Declared result types backfill the return doc.
func mergeParams(rec *exdoc.DocRecord, ft *ast.FuncType, render func(ast.Expr) string) *exdoc.DocRecord {
	byName := make(map[string]exdoc.ParamDoc, len(rec.Parameters))
	for _, param := range rec.Parameters {
		byName[strings.TrimLeft(param.Name, "*.")] = param
	}

	merged := *rec
	merged.Parameters = nil
	if ft != nil && ft.Params != nil {
		for _, field := range ft.Params.List {
			_, variadic := field.Type.(*ast.Ellipsis)
			for _, ident := range field.Names {
				doc := byName[ident.Name]
				display := ident.Name
				if variadic {
					display = "..." + display
				}
				merged.Parameters = append(merged.Parameters, exdoc.ParamDoc{
					Name:        display,
					Description: doc.Description,
					Type:        doc.Type,
					Default:     doc.Default,
				})
			}
		}
	}

	if ret := resultTypes(ft, render); ret != "" {
		if merged.Return == nil {
			merged.Return = &exdoc.ReturnDoc{Type: &ret}
		} else if merged.Return.Type == nil {
			r := *merged.Return
			r.Type = &ret
			merged.Return = &r
		}
	}
	return &merged
}

// signature renders "Name(a int, b ...string)". A callable with no
// introspectable signature degrades to "Name()".
func (p *Package) signature(name string, ft *ast.FuncType) string {
	var parts []string
	if ft != nil && ft.Params != nil {
		for _, field := range ft.Params.List {
			typ := p.render(field.Type)
			if len(field.Names) == 0 {
				parts = append(parts, typ)
				continue
			}
			for _, ident := range field.Names {
				parts = append(parts, ident.Name+" "+typ)
			}
		}
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func resultTypes(ft *ast.FuncType, render func(ast.Expr) string) string {
	if ft == nil || ft.Results == nil || len(ft.Results.List) == 0 {
		return ""
	}
	var parts []string
	for _, field := range ft.Results.List {
		typ := render(field.Type)
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			parts = append(parts, typ)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// render prints a type expression as written in source.
func (p *Package) render(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, p.fset, expr); err != nil {
		return ""
	}
	return buf.String()
}
