// Package gosource documents declarations of a parsed Go package.
//
// Load parses one directory the way the generator tools in this repo's
// lineage do, indexes every top-level declaration, and the resulting Package
// hands out ObjectDoc values for functions, methods, types, struct fields
// and the package itself. Doc comments run through the docstring parser, so
// field-list markers in comments turn into structured parameter, return and
// error documentation.
package gosource

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

// ErrNotFound is returned when a name resolves to no documented object.
var ErrNotFound = errors.New("object not found")

// Package is an indexed, documentable Go package.
type Package struct {
	// Name is the package name, used as the Module of every ObjectDoc.
	Name string
	// doc is the raw package comment.
	doc string

	fset  *token.FileSet
	funcs map[string]*ast.FuncDecl
	types map[string]*typeInfo

	funcNames []string // declaration order
	typeNames []string
}

type typeInfo struct {
	name    string
	doc     string
	spec    *ast.TypeSpec
	strct   *ast.StructType // nil for non-struct types
	methods map[string]*ast.FuncDecl
	fields  []fieldInfo
	embeds  []string // embedded type names, package qualifiers stripped
}

type fieldInfo struct {
	name string
	doc  string
}

// Load parses every non-test Go file in dir and indexes its declarations.
// When the directory holds several packages the first by name is used.
func Load(dir string) (*Package, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", dir, err)
	}

	var names []string
	for name := range pkgs {
		if !strings.HasSuffix(name, "_test") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no Go package found in %s", dir)
	}
	sort.Strings(names)
	astPkg := pkgs[names[0]]

	p := &Package{
		Name:  astPkg.Name,
		fset:  fset,
		funcs: map[string]*ast.FuncDecl{},
		types: map[string]*typeInfo{},
	}

	// Files in path order keeps declaration order stable across runs.
	var files []string
	for path := range astPkg.Files {
		files = append(files, path)
	}
	sort.Strings(files)

	for _, path := range files {
		p.indexFile(astPkg.Files[path])
	}
	slog.Debug("indexed package",
		"package", p.Name, "files", len(files),
		"funcs", len(p.funcs), "types", len(p.types))
	return p, nil
}

func (p *Package) indexFile(file *ast.File) {
	if file.Doc != nil && p.doc == "" {
		p.doc = file.Doc.Text()
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					p.indexType(ts, d.Doc)
				}
			}
		case *ast.FuncDecl:
			p.indexFunc(d)
		}
	}
}

func (p *Package) indexType(ts *ast.TypeSpec, declDoc *ast.CommentGroup) {
	ti := p.typ(ts.Name.Name)
	ti.spec = ts
	// A doc comment on the type spec wins over one on the surrounding decl.
	if ts.Doc != nil {
		ti.doc = ts.Doc.Text()
	} else if declDoc != nil {
		ti.doc = declDoc.Text()
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return
	}
	ti.strct = st

	for _, fld := range st.Fields.List {
		doc := ""
		if fld.Doc != nil {
			doc = fld.Doc.Text()
		} else if fld.Comment != nil {
			doc = fld.Comment.Text()
		}

		if len(fld.Names) == 0 {
			ti.embeds = append(ti.embeds, baseTypeName(fld.Type))
			continue
		}
		for _, ident := range fld.Names {
			ti.fields = append(ti.fields, fieldInfo{name: ident.Name, doc: doc})
		}
	}
}

func (p *Package) indexFunc(fn *ast.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		if _, dup := p.funcs[fn.Name.Name]; !dup {
			p.funcNames = append(p.funcNames, fn.Name.Name)
		}
		p.funcs[fn.Name.Name] = fn
		return
	}
	recv := baseTypeName(fn.Recv.List[0].Type)
	if recv == "" {
		return
	}
	p.typ(recv).methods[fn.Name.Name] = fn
}

// typ returns the index entry for name, creating it on first use: methods
// may be indexed before their type declaration is seen.
func (p *Package) typ(name string) *typeInfo {
	ti, ok := p.types[name]
	if !ok {
		ti = &typeInfo{name: name, methods: map[string]*ast.FuncDecl{}}
		p.types[name] = ti
		p.typeNames = append(p.typeNames, name)
	}
	return ti
}

// Names lists every documentable top-level name, functions before types,
// each group in declaration order.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.funcNames)+len(p.typeNames))
	names = append(names, p.funcNames...)
	for _, name := range p.typeNames {
		// Skip phantom entries created by methods on undeclared receivers.
		if p.types[name].spec != nil {
			names = append(names, name)
		}
	}
	return names
}

// baseTypeName unwraps pointers, generic instantiations and package
// qualifiers down to the bare type identifier.
func baseTypeName(expr ast.Expr) string {
	for {
		switch t := expr.(type) {
		case *ast.Ident:
			return t.Name
		case *ast.StarExpr:
			expr = t.X
		case *ast.SelectorExpr:
			return t.Sel.Name
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		default:
			return ""
		}
	}
}
