package expand

import (
	"strings"
	"unicode"

	"macro-synth/internal/classify"
	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/syntax"
)

// mappableRule synthesizes the decoding glue for a type: a failable
// initializer taking the decoder, a mapping function binding every
// non-private field, and the conformance extension.
type mappableRule struct {
	conv    MappingConventions
	decoder Decoder
}

func (mappableRule) Name() string { return "Mappable" }

func (mappableRule) RequiresDeclaration() bool { return true }

func (r mappableRule) Expand(req *Request, sink *diagnostic.Sink) (Result, error) {
	d := req.Declaration
	loc := diagLocation(d.Location, req.Location)
	isSubclass := r.isSubclass(req, sink, loc)

	switch d.Kind {
	case decl.KindValue:
		if isSubclass {
			sink.Warning(loc, msgValueTypeSubclass)
		}

		return Result{Declarations: r.base(d, true)}, nil

	case decl.KindReference:
		if !isSubclass {
			return Result{Declarations: r.base(d, false)}, nil
		}

		if !d.HasInheritance() {
			sink.Error(loc, msgInheritedClassNotFound)
			return Result{}, nil
		}

		return Result{Declarations: r.derived(d)}, nil

	default:
		sink.Error(loc, msgUnsupportedKind)
		return Result{}, nil
	}
}

func (r mappableRule) isSubclass(req *Request, sink *diagnostic.Sink, loc decl.Location) bool {
	arg, ok := req.Arguments.Lookup("isSubclass")
	if !ok {
		return false
	}

	v, ok := arg.Value.Bool()
	if !ok {
		sink.Warning(loc, msgSubclassNotLiteral)
		return false
	}

	return v
}

// base is the standalone shape: the type maps its own fields and declares
// the conformance.
func (r mappableRule) base(d *decl.TypeDeclaration, value bool) []syntax.Decl {
	var out []syntax.Decl

	if !r.hasInitializer(d) {
		var mods []string
		if !value {
			mods = []string{"required"}
		}

		out = append(out, &syntax.Initializer{Modifiers: mods, Failable: true, Params: r.params()})
	}

	if !r.hasMappingFunction(d) {
		var mods []string
		if value {
			mods = []string{"mutating"}
		}

		out = append(out, &syntax.Function{
			Modifiers: mods,
			Name:      r.conv.Function,
			Params:    r.params(),
			Body:      r.binds(d),
		})
	}

	if !d.Inherit(r.conv.Capability) {
		out = append(out, &syntax.Extension{Extended: d.Name, Conformances: []string{r.conv.Capability}})
	}

	return out
}

// derived chains to the superclass, which already declares the conformance.
func (r mappableRule) derived(d *decl.TypeDeclaration) []syntax.Decl {
	var out []syntax.Decl

	if !r.hasInitializer(d) {
		out = append(out, &syntax.Initializer{
			Modifiers: []string{"required"},
			Failable:  true,
			Params:    r.params(),
			Body:      []syntax.Stmt{r.superCall("init")},
		})
	}

	if !r.hasMappingFunction(d) {
		body := append([]syntax.Stmt{r.superCall(r.conv.Function)}, r.binds(d)...)
		out = append(out, &syntax.Function{
			Modifiers: []string{"override"},
			Name:      r.conv.Function,
			Params:    r.params(),
			Body:      body,
		})
	}

	return out
}

func (r mappableRule) params() []syntax.Param {
	return []syntax.Param{{Name: r.conv.Param, Type: r.conv.DecoderType}}
}

func (r mappableRule) superCall(method string) syntax.Stmt {
	return syntax.SuperCall{
		Method: method,
		Args:   []syntax.CallArg{{Label: r.conv.Param, Value: syntax.Raw{Text: r.conv.Param}}},
	}
}

func (r mappableRule) binds(d *decl.TypeDeclaration) []syntax.Stmt {
	fields := classify.NonPrivateFields(d.Members)
	out := make([]syntax.Stmt, 0, len(fields))

	for _, f := range fields {
		out = append(out, syntax.Bind{
			Target:   f.Name,
			Operator: r.conv.Operator,
			Source:   r.decoder.Lookup(f.DecodingKey()),
		})
	}

	return out
}

// hasInitializer reports whether d already declares `init?(map: Map)`,
// whatever its modifiers.
func (r mappableRule) hasInitializer(d *decl.TypeDeclaration) bool {
	for _, fn := range classify.Initializers(d.Members) {
		if fn.Failable && r.takesDecoder(fn) {
			return true
		}
	}

	return false
}

// hasMappingFunction reports whether d already declares the mapping function.
func (r mappableRule) hasMappingFunction(d *decl.TypeDeclaration) bool {
	for _, fn := range classify.Methods(d.Members) {
		if fn.Name == r.conv.Function && r.takesDecoder(fn) {
			return true
		}
	}

	return false
}

func (r mappableRule) takesDecoder(fn *decl.Function) bool {
	if len(fn.Parameters) != 1 {
		return false
	}

	p := fn.Parameters[0]
	if p.ExternalLabel() != r.conv.Param {
		return false
	}

	typ := stripSpace(p.Type)
	full := stripSpace(r.conv.DecoderType)
	short := full[strings.LastIndex(full, ".")+1:]

	return typ == full || typ == short
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
