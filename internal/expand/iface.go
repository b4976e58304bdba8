package expand

import (
	"fmt"
	"slices"
	"strings"

	"macro-synth/internal/classify"
	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/syntax"
)

// interfaceRule derives a protocol from a class's non-private surface.
type interfaceRule struct {
	conv InterfaceConventions
}

func (interfaceRule) Name() string { return "InterfaceGen" }

func (interfaceRule) RequiresDeclaration() bool { return true }

func (r interfaceRule) Expand(req *Request, sink *diagnostic.Sink) (Result, error) {
	d := req.Declaration
	loc := diagLocation(d.Location, req.Location)

	if d.Kind != decl.KindReference {
		sink.Error(loc, msgUnsupportedInterfaceKind)
		return Result{}, nil
	}

	proto := &syntax.Protocol{
		Access:  "public",
		Name:    d.Name + r.conv.Suffix,
		Refines: slices.Clone(r.conv.Refines),
	}

	for _, f := range classify.NonPrivateFields(d.Members) {
		typ := strings.TrimSpace(f.Type)
		if typ == "" {
			sink.Warning(diagLocation(f.Location, loc), fmt.Sprintf(msgFieldWithoutType, f.Name, proto.Name))
			continue
		}

		proto.Properties = append(proto.Properties, syntax.PropertyRequirement{Name: f.Name, Type: typ})
	}

	for _, fn := range classify.NonPrivateFunctions(d.Members) {
		proto.Methods = append(proto.Methods, requirement(fn))
	}

	return Result{Declarations: []syntax.Decl{proto}}, nil
}

// requirement strips a method down to its signature. Defaults, bodies and
// non-static modifiers have no place in a protocol.
func requirement(fn *decl.Function) syntax.MethodRequirement {
	params := make([]syntax.Param, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		params = append(params, syntax.Param{
			Label: p.Label,
			Name:  p.Name,
			Type:  strings.TrimSpace(p.Type),
			InOut: p.IsMutableReference,
		})
	}

	return syntax.MethodRequirement{
		Static: fn.HasModifier("static") || fn.HasModifier("class"),
		Name:   fn.Name,
		Params: params,
		Async:  fn.Async,
		Throws: fn.Throws,
		Result: strings.TrimSpace(fn.Result),
	}
}
