package expand

import (
	"slices"

	"macro-synth/internal/logger"
	"macro-synth/internal/syntax"
)

// MappingConventions names the decoding library's pieces that Field-Mapping
// Synthesis writes into generated code.
type MappingConventions struct {
	DecoderType string // parameter type of the initializer and mapping function
	Param       string // parameter name and label
	Capability  string // conformance declared by the extension
	Function    string // mapping function name
	Operator    string // bind operator
}

// DefaultMappingConventions targets ObjectMapper.
func DefaultMappingConventions() MappingConventions {
	return MappingConventions{
		DecoderType: "ObjectMapper.Map",
		Param:       "map",
		Capability:  "Mappable",
		Function:    "mapping",
		Operator:    "<-",
	}
}

// InterfaceConventions shapes the declarations of Interface Extraction.
type InterfaceConventions struct {
	Suffix  string
	Refines []string
}

// DefaultInterfaceConventions produces `<Name>Interface: AnyObject`.
func DefaultInterfaceConventions() InterfaceConventions {
	return InterfaceConventions{
		Suffix:  "Interface",
		Refines: []string{"AnyObject"},
	}
}

// ResourceTable builds the expression that reads a key from the host's
// resource table.
type ResourceTable interface {
	Lookup(key syntax.Expr) syntax.Expr
}

// Decoder builds the expression that reads a key from the decoding structure
// passed to a mapping function.
type Decoder interface {
	Lookup(key string) syntax.Expr
}

// BundleTable reads from the main bundle's info dictionary:
// `Bundle.main.object(forInfoDictionaryKey: key)`.
type BundleTable struct {
	Receiver string
	Method   string
	Label    string
}

// DefaultBundleTable returns the main-bundle info dictionary table.
func DefaultBundleTable() BundleTable {
	return BundleTable{
		Receiver: "Bundle.main",
		Method:   "object",
		Label:    "forInfoDictionaryKey",
	}
}

func (t BundleTable) Lookup(key syntax.Expr) syntax.Expr {
	return syntax.Call{
		Callee: t.Receiver + "." + t.Method,
		Args:   []syntax.CallArg{{Label: t.Label, Value: key}},
	}
}

// MapDecoder subscripts the mapping parameter: `map["key"]`.
type MapDecoder struct {
	Param string
}

func (d MapDecoder) Lookup(key string) syntax.Expr {
	return syntax.Subscript{Base: d.Param, Index: syntax.StringLiteral{Value: key}}
}

// Options configures an Engine. Zero fields take their defaults.
type Options struct {
	Mapping             MappingConventions
	Interface           InterfaceConventions
	Resources           ResourceTable
	Decoder             Decoder
	DefaultResourceType string
	Logger              logger.Logger
}

// DefaultOptions returns the options New uses for zero fields.
func DefaultOptions() Options {
	conv := DefaultMappingConventions()

	return Options{
		Mapping:             conv,
		Interface:           DefaultInterfaceConventions(),
		Resources:           DefaultBundleTable(),
		Decoder:             MapDecoder{Param: conv.Param},
		DefaultResourceType: "String",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	o.Mapping.DecoderType = orDefault(o.Mapping.DecoderType, def.Mapping.DecoderType)
	o.Mapping.Param = orDefault(o.Mapping.Param, def.Mapping.Param)
	o.Mapping.Capability = orDefault(o.Mapping.Capability, def.Mapping.Capability)
	o.Mapping.Function = orDefault(o.Mapping.Function, def.Mapping.Function)
	o.Mapping.Operator = orDefault(o.Mapping.Operator, def.Mapping.Operator)

	o.Interface.Suffix = orDefault(o.Interface.Suffix, def.Interface.Suffix)
	if o.Interface.Refines == nil {
		o.Interface.Refines = def.Interface.Refines
	}

	o.Interface.Refines = slices.Clone(o.Interface.Refines)

	if o.Resources == nil {
		o.Resources = def.Resources
	}

	if o.Decoder == nil {
		o.Decoder = MapDecoder{Param: o.Mapping.Param}
	}

	o.DefaultResourceType = orDefault(o.DefaultResourceType, def.DefaultResourceType)

	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}

	return o
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
