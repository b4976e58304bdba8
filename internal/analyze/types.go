package analyze

import (
	"macro-synth/internal/common"
	"macro-synth/internal/decl"
	"macro-synth/internal/expand"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "macro-synth/examples/models"
	Name    string // e.g., "Merchant"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns "pkg.Name" using the last element of the package path.
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// Directive is one parsed //synth: comment.
type Directive struct {
	Macro     string
	Arguments decl.Arguments
	Location  decl.Location
}

// Annotated is a declaration carrying at least one directive.
type Annotated struct {
	// ID names the annotated type, or the first name of a var/const spec.
	ID TypeID
	// Declaration is nil for var and const declarations.
	Declaration *decl.TypeDeclaration
	Directives  []Directive
}

// Requests returns one request per directive.
func (a *Annotated) Requests() []*expand.Request {
	out := make([]*expand.Request, 0, len(a.Directives))
	for _, d := range a.Directives {
		out = append(out, &expand.Request{
			Macro:       d.Macro,
			Location:    d.Location,
			Arguments:   d.Arguments,
			Declaration: a.Declaration,
		})
	}

	return out
}

// Scan is the outcome of loading a set of packages.
type Scan struct {
	// Packages lists the loaded package paths in load order.
	Packages []string
	// Annotated lists annotated declarations in package then source order.
	Annotated []Annotated
}

// Requests flattens every directive of the scan into requests, in order.
func (s *Scan) Requests() []*expand.Request {
	var out []*expand.Request
	for i := range s.Annotated {
		out = append(out, s.Annotated[i].Requests()...)
	}

	return out
}

// Lookup returns the annotated declaration with the given ID.
func (s *Scan) Lookup(id TypeID) (*Annotated, bool) {
	for i := range s.Annotated {
		if s.Annotated[i].ID == id {
			return &s.Annotated[i], true
		}
	}

	return nil, false
}
