package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"macro-synth/internal/decl"
	"macro-synth/internal/naming"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their annotated declarations.
type Analyzer struct {
	// Dir is the working directory for pattern resolution; empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and scans them for directives.
// Patterns are standard Go package patterns (e.g., "./models",
// "macro-synth/examples/models").
func (a *Analyzer) LoadPackages(patterns ...string) (*Scan, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	scan := &Scan{}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg, scan); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		scan.Packages = append(scan.Packages, pkg.PkgPath)
	}

	return scan, nil
}

// processPackage walks the package's files in order and records every
// declaration with directives.
func (a *Analyzer) processPackage(pkg *packages.Package, scan *Scan) error {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				doc := specDoc(gen, spec)
				if doc == nil {
					continue
				}

				directives, err := parseDirectives(pkg.Fset, doc)
				if err != nil {
					return err
				}

				if len(directives) == 0 {
					continue
				}

				ann, err := a.annotate(pkg, spec)
				if err != nil {
					return err
				}

				ann.Directives = directives
				scan.Annotated = append(scan.Annotated, ann)
			}
		}
	}

	return nil
}

// specDoc returns the doc comment of a spec. A lone spec without parens
// carries its doc on the GenDecl.
func specDoc(gen *ast.GenDecl, spec ast.Spec) *ast.CommentGroup {
	var doc *ast.CommentGroup

	switch s := spec.(type) {
	case *ast.TypeSpec:
		doc = s.Doc
	case *ast.ValueSpec:
		doc = s.Doc
	}

	if doc == nil && !gen.Lparen.IsValid() {
		doc = gen.Doc
	}

	return doc
}

func parseDirectives(fset *token.FileSet, doc *ast.CommentGroup) ([]Directive, error) {
	var out []Directive

	for _, c := range doc.List {
		d, ok, err := ParseDirective(c.Text, position(fset, c.Pos()))
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, d)
		}
	}

	return out, nil
}

func (a *Analyzer) annotate(pkg *packages.Package, spec ast.Spec) (Annotated, error) {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		obj, ok := pkg.TypesInfo.Defs[s.Name].(*types.TypeName)
		if !ok {
			return Annotated{}, fmt.Errorf("no type information for %s", s.Name.Name)
		}

		return Annotated{
			ID:          TypeID{PkgPath: pkg.PkgPath, Name: obj.Name()},
			Declaration: buildDeclaration(pkg.Fset, obj),
		}, nil

	case *ast.ValueSpec:
		return Annotated{ID: TypeID{PkgPath: pkg.PkgPath, Name: s.Names[0].Name}}, nil

	default:
		return Annotated{}, fmt.Errorf("unsupported declaration %T", spec)
	}
}

// buildDeclaration maps a named Go type onto the structural model.
func buildDeclaration(fset *token.FileSet, obj *types.TypeName) *decl.TypeDeclaration {
	d := &decl.TypeDeclaration{
		Name:     obj.Name(),
		Location: position(fset, obj.Pos()),
	}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		d.Kind = decl.KindEnumeration
		return d
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		d.Kind = decl.KindValue

		for i := range ut.NumFields() {
			f := ut.Field(i)
			if f.Embedded() {
				if embedsStruct(f.Type()) {
					d.Kind = decl.KindReference
				}

				d.Inherits = append(d.Inherits, embeddedName(f.Type()))

				continue
			}

			d.Members = append(d.Members, buildField(fset, f, reflect.StructTag(ut.Tag(i))))
		}

		if hasPointerReceiver(named) {
			d.Kind = decl.KindReference
		}

	case *types.Interface:
		d.Kind = decl.KindInterface

		for i := range ut.NumEmbeddeds() {
			d.Inherits = append(d.Inherits, embeddedName(ut.EmbeddedType(i)))
		}

		for i := range ut.NumExplicitMethods() {
			d.Members = append(d.Members, buildMethod(fset, ut.ExplicitMethod(i)))
		}

		return d

	default:
		d.Kind = decl.KindEnumeration
	}

	for _, m := range sortedMethods(named) {
		d.Members = append(d.Members, buildMethod(fset, m))
	}

	return d
}

func buildField(fset *token.FileSet, f *types.Var, tag reflect.StructTag) *decl.Field {
	return &decl.Field{
		Name:       naming.LowerCamel(f.Name()),
		Type:       HostType(f.Type()),
		Key:        jsonName(tag),
		Visibility: visibility(f),
		Location:   position(fset, f.Pos()),
	}
}

func buildMethod(fset *token.FileSet, fn *types.Func) *decl.Function {
	sig, _ := fn.Type().(*types.Signature)

	out := &decl.Function{
		Name:       naming.LowerCamel(fn.Name()),
		Kind:       decl.FuncMethod,
		Visibility: visibility(fn),
		HasBody:    true,
		Location:   position(fset, fn.Pos()),
	}

	if sig == nil {
		return out
	}

	params := sig.Params()
	for i := range params.Len() {
		p := params.At(i)

		name := p.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}

		typ := HostType(p.Type())
		if sig.Variadic() && i == params.Len()-1 {
			if s, ok := p.Type().(*types.Slice); ok {
				typ = HostType(s.Elem()) + "..."
			}
		}

		out.Parameters = append(out.Parameters, decl.Parameter{Label: "_", Name: name, Type: typ})
	}

	out.Result, out.Throws = hostResult(sig.Results())

	return out
}

type exporter interface {
	Exported() bool
}

func visibility(obj exporter) decl.Visibility {
	if obj.Exported() {
		return decl.VisibilityPublic
	}

	return decl.VisibilityPrivate
}

// jsonName returns the name part of a json tag, or "" when the tag is
// absent or "-".
func jsonName(tag reflect.StructTag) string {
	name, _, _ := strings.Cut(tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func embedsStruct(t types.Type) bool {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	_, ok := t.Underlying().(*types.Struct)

	return ok
}

func embeddedName(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	if n, ok := types.Unalias(t).(*types.Named); ok {
		return n.Obj().Name()
	}

	return HostType(t)
}

func hasPointerReceiver(named *types.Named) bool {
	for i := range named.NumMethods() {
		sig, ok := named.Method(i).Type().(*types.Signature)
		if !ok || sig.Recv() == nil {
			continue
		}

		if _, ptr := sig.Recv().Type().(*types.Pointer); ptr {
			return true
		}
	}

	return false
}

// sortedMethods returns the methods declared on named in source order.
func sortedMethods(named *types.Named) []*types.Func {
	out := make([]*types.Func, 0, named.NumMethods())
	for i := range named.NumMethods() {
		out = append(out, named.Method(i))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos() < out[j].Pos()
	})

	return out
}

func position(fset *token.FileSet, pos token.Pos) decl.Location {
	if !pos.IsValid() {
		return decl.Location{}
	}

	p := fset.Position(pos)

	return decl.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}
