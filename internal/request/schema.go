package request

// File is the root structure of a request file.
type File struct {
	// Version is the schema version, defaults to "1".
	Version string `yaml:"version" toml:"version"`
	// Requests lists the macro usages to expand, in output order.
	Requests []RequestSpec `yaml:"requests" toml:"requests"`
	// Source is the path the file was loaded from. Not serialized.
	Source string `yaml:"-" toml:"-"`
}

// RequestSpec is one macro usage.
type RequestSpec struct {
	Macro       string           `yaml:"macro" toml:"macro"`
	Location    LocationSpec     `yaml:"location,omitempty" toml:"location"`
	Arguments   ArgumentList     `yaml:"arguments,omitempty" toml:"arguments"`
	Args        string           `yaml:"args,omitempty" toml:"args"`
	Declaration *DeclarationSpec `yaml:"declaration,omitempty" toml:"declaration"`
}

// LocationSpec points at the macro usage in host source.
type LocationSpec struct {
	File   string `yaml:"file,omitempty" toml:"file"`
	Line   int    `yaml:"line,omitempty" toml:"line"`
	Column int    `yaml:"column,omitempty" toml:"column"`
}

// ArgumentSpec is one argument of a macro usage.
type ArgumentSpec struct {
	Label string `yaml:"label,omitempty" toml:"label"`
	Value string `yaml:"value" toml:"value"`
}

// ArgumentList accepts scalars and {label, value} maps; see UnmarshalYAML.
type ArgumentList []ArgumentSpec

// StringOrArray represents a value that can be either a single string or an
// array of strings.
type StringOrArray []string

// DeclarationSpec is the annotated type declaration.
type DeclarationSpec struct {
	// Kind is class, struct, protocol or enum.
	Kind     string        `yaml:"kind" toml:"kind"`
	Name     string        `yaml:"name" toml:"name"`
	Inherits StringOrArray `yaml:"inherits,omitempty" toml:"inherits"`
	Members  []MemberSpec  `yaml:"members,omitempty" toml:"members"`
	Location LocationSpec  `yaml:"location,omitempty" toml:"location"`
}

// MemberSpec holds exactly one of Field and Function.
type MemberSpec struct {
	Field    *FieldSpec    `yaml:"field,omitempty" toml:"field"`
	Function *FunctionSpec `yaml:"function,omitempty" toml:"function"`
}

// FieldSpec is a stored property.
type FieldSpec struct {
	Name       string `yaml:"name" toml:"name"`
	Type       string `yaml:"type,omitempty" toml:"type"`
	Key        string `yaml:"key,omitempty" toml:"key"`
	Visibility string `yaml:"visibility,omitempty" toml:"visibility"`
	Line       int    `yaml:"line,omitempty" toml:"line"`
}

// FunctionSpec is a method, or an initializer when Init is set.
type FunctionSpec struct {
	Name       string      `yaml:"name" toml:"name"`
	Init       bool        `yaml:"init,omitempty" toml:"init"`
	Failable   bool        `yaml:"failable,omitempty" toml:"failable"`
	Modifiers  []string    `yaml:"modifiers,omitempty" toml:"modifiers"`
	Visibility string      `yaml:"visibility,omitempty" toml:"visibility"`
	Params     []ParamSpec `yaml:"params,omitempty" toml:"params"`
	Async      bool        `yaml:"async,omitempty" toml:"async"`
	Throws     bool        `yaml:"throws,omitempty" toml:"throws"`
	Result     string      `yaml:"result,omitempty" toml:"result"`
	Body       string      `yaml:"body,omitempty" toml:"body"`
	Line       int         `yaml:"line,omitempty" toml:"line"`
}

// ParamSpec is one parameter. Label "_" marks an unlabeled parameter.
type ParamSpec struct {
	Label   string  `yaml:"label,omitempty" toml:"label"`
	Name    string  `yaml:"name" toml:"name"`
	Type    string  `yaml:"type" toml:"type"`
	Default *string `yaml:"default,omitempty" toml:"default"`
	InOut   bool    `yaml:"inout,omitempty" toml:"inout"`
}
