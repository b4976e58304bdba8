package request

import (
	"fmt"

	"macro-synth/internal/decl"
	"macro-synth/internal/expand"
)

// ExpandRequests converts every entry of f into an engine request. It stops at the
// first entry that cannot be converted; Validate reports all of them.
func (f *File) ExpandRequests() ([]*expand.Request, error) {
	out := make([]*expand.Request, 0, len(f.Requests))

	for i := range f.Requests {
		req, err := f.Requests[i].ToRequest()
		if err != nil {
			return nil, fmt.Errorf("requests[%d] (%s): %w", i, f.Requests[i].Macro, err)
		}

		out = append(out, req)
	}

	return out, nil
}

// ToRequest converts the spec into an engine request.
func (r *RequestSpec) ToRequest() (*expand.Request, error) {
	args, err := r.arguments()
	if err != nil {
		return nil, err
	}

	req := &expand.Request{
		Macro:     r.Macro,
		Location:  r.Location.toLocation(),
		Arguments: args,
	}

	if r.Declaration != nil {
		d, err := r.Declaration.ToDeclaration()
		if err != nil {
			return nil, err
		}

		req.Declaration = d
	}

	return req, nil
}

func (r *RequestSpec) arguments() (decl.Arguments, error) {
	if r.Args != "" {
		if len(r.Arguments) > 0 {
			return nil, fmt.Errorf("both args and arguments are set")
		}

		args, err := ParseArguments(r.Args)
		if err != nil {
			return nil, fmt.Errorf("invalid args %q: %w", r.Args, err)
		}

		return args, nil
	}

	out := make(decl.Arguments, 0, len(r.Arguments))
	for _, a := range r.Arguments {
		out = append(out, decl.Argument{Label: a.Label, Value: decl.ParseExpr(a.Value)})
	}

	return out, nil
}

func (l LocationSpec) toLocation() decl.Location {
	return decl.Location{File: l.File, Line: l.Line, Column: l.Column}
}

// ToDeclaration converts the spec into the structural declaration model.
func (d *DeclarationSpec) ToDeclaration() (*decl.TypeDeclaration, error) {
	kind, err := decl.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}

	out := &decl.TypeDeclaration{
		Kind:     kind,
		Name:     d.Name,
		Inherits: append([]string(nil), d.Inherits...),
		Location: d.Location.toLocation(),
	}

	for i, m := range d.Members {
		member, err := m.toMember(out.Location)
		if err != nil {
			return nil, fmt.Errorf("members[%d]: %w", i, err)
		}

		out.Members = append(out.Members, member)
	}

	return out, nil
}

func (m MemberSpec) toMember(declLoc decl.Location) (decl.Member, error) {
	switch {
	case m.Field != nil && m.Function != nil:
		return nil, fmt.Errorf("member sets both field and function")
	case m.Field != nil:
		return m.Field.toField(declLoc)
	case m.Function != nil:
		return m.Function.toFunction(declLoc)
	default:
		return nil, fmt.Errorf("member sets neither field nor function")
	}
}

func (f *FieldSpec) toField(declLoc decl.Location) (*decl.Field, error) {
	vis, err := decl.ParseVisibility(f.Visibility)
	if err != nil {
		return nil, err
	}

	return &decl.Field{
		Name:       f.Name,
		Type:       f.Type,
		Key:        f.Key,
		Visibility: vis,
		Location:   memberLocation(declLoc, f.Line),
	}, nil
}

func (f *FunctionSpec) toFunction(declLoc decl.Location) (*decl.Function, error) {
	vis, err := decl.ParseVisibility(f.Visibility)
	if err != nil {
		return nil, err
	}

	fn := &decl.Function{
		Name:       f.Name,
		Kind:       decl.FuncMethod,
		Modifiers:  append([]string(nil), f.Modifiers...),
		Failable:   f.Failable,
		Async:      f.Async,
		Throws:     f.Throws,
		Result:     f.Result,
		Visibility: vis,
		HasBody:    f.Body != "",
		Body:       f.Body,
		Location:   memberLocation(declLoc, f.Line),
	}

	if f.Init {
		fn.Kind = decl.FuncInitializer
	}

	for _, p := range f.Params {
		param := decl.Parameter{
			Label:              p.Label,
			Name:               p.Name,
			Type:               p.Type,
			IsMutableReference: p.InOut,
		}

		if p.Default != nil {
			param.HasDefaultValue = true
			param.DefaultValue = *p.Default
		}

		fn.Parameters = append(fn.Parameters, param)
	}

	return fn, nil
}

func memberLocation(declLoc decl.Location, line int) decl.Location {
	if line == 0 {
		return decl.Location{}
	}

	return decl.Location{File: declLoc.File, Line: line}
}
