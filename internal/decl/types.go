package decl

import (
	"fmt"
	"strings"
)

const unknownStr = "unknown"

// Kind is the shape of a type declaration.
type Kind int

const (
	KindUnknown     Kind = iota
	KindValue            // struct: copied, no inheritance
	KindReference        // class: shared, supports inheritance
	KindInterface        // protocol: requirements only
	KindEnumeration      // enum
)

// String returns the host keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "struct"
	case KindReference:
		return "class"
	case KindInterface:
		return "protocol"
	case KindEnumeration:
		return "enum"
	default:
		return unknownStr
	}
}

// ParseKind maps a host keyword (or its long name) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "struct", "value":
		return KindValue, nil
	case "class", "reference":
		return KindReference, nil
	case "protocol", "interface":
		return KindInterface, nil
	case "enum", "enumeration":
		return KindEnumeration, nil
	default:
		return KindUnknown, fmt.Errorf("unknown declaration kind %q", s)
	}
}

// Visibility is the accessibility tier of a member. The zero value is the
// implicit internal level.
type Visibility int

const (
	VisibilityInternal Visibility = iota // default when no modifier is written
	VisibilityPrivate
	VisibilityFilePrivate
	VisibilityPublic
	VisibilityOpen
)

// String returns the modifier keyword.
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityFilePrivate:
		return "fileprivate"
	case VisibilityInternal:
		return "internal"
	case VisibilityPublic:
		return "public"
	case VisibilityOpen:
		return "open"
	default:
		return unknownStr
	}
}

// IsPrivate reports whether v is the most restrictive level.
func (v Visibility) IsPrivate() bool {
	return v == VisibilityPrivate
}

// ParseVisibility maps a modifier keyword to a Visibility. The empty string
// is the implicit internal level.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "internal":
		return VisibilityInternal, nil
	case "private":
		return VisibilityPrivate, nil
	case "fileprivate":
		return VisibilityFilePrivate, nil
	case "public":
		return VisibilityPublic, nil
	case "open":
		return VisibilityOpen, nil
	default:
		return VisibilityInternal, fmt.Errorf("unknown visibility %q", s)
	}
}

// Location points at a node in the host's source.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the location carries no information.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String returns "file:line:col", omitting unknown parts.
func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}

	file := l.File
	if file == "" {
		file = "<input>"
	}

	switch {
	case l.Line == 0:
		return file
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", file, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
	}
}

// TypeDeclaration is the structural view of a single type declaration.
type TypeDeclaration struct {
	Kind     Kind
	Name     string
	Inherits []string // in written order, empty when there is no inheritance clause
	Members  []Member // in written order
	Location Location
}

// HasInheritance reports whether the declaration lists at least one
// inherited type or conformance.
func (d *TypeDeclaration) HasInheritance() bool {
	return len(d.Inherits) > 0
}

// Inherit reports whether name appears in the inheritance list.
func (d *TypeDeclaration) Inherit(name string) bool {
	for _, n := range d.Inherits {
		if n == name {
			return true
		}
	}

	return false
}

// Member is a field or a function of a type declaration.
type Member interface {
	MemberName() string
	MemberVisibility() Visibility
	MemberLocation() Location

	member()
}

// Field is a stored property.
type Field struct {
	Name       string
	Type       string // verbatim annotation, empty when the host wrote none
	Key        string // decoding key override, empty means Name
	Visibility Visibility
	Location   Location
}

func (f *Field) MemberName() string           { return f.Name }
func (f *Field) MemberVisibility() Visibility { return f.Visibility }
func (f *Field) MemberLocation() Location     { return f.Location }
func (*Field) member()                        {}

// DecodingKey returns the key used to read the field from a decoder.
func (f *Field) DecodingKey() string {
	if f.Key != "" {
		return f.Key
	}

	return f.Name
}

// FuncKind distinguishes methods from initializers.
type FuncKind int

const (
	FuncMethod FuncKind = iota
	FuncInitializer
)

// Function is a method or an initializer.
type Function struct {
	Name       string // "init" for initializers
	Kind       FuncKind
	Modifiers  []string // non-visibility modifiers as written: static, override, required, mutating...
	Failable   bool     // init? rather than init
	Parameters []Parameter
	Async      bool
	Throws     bool
	Result     string // verbatim result type, empty for no result
	Visibility Visibility
	HasBody    bool
	Body       string
	Location   Location
}

func (f *Function) MemberName() string           { return f.Name }
func (f *Function) MemberVisibility() Visibility { return f.Visibility }
func (f *Function) MemberLocation() Location     { return f.Location }
func (*Function) member()                        {}

// IsInitializer reports whether f is an initializer.
func (f *Function) IsInitializer() bool {
	return f.Kind == FuncInitializer
}

// HasModifier reports whether the modifier keyword is present.
func (f *Function) HasModifier(m string) bool {
	for _, x := range f.Modifiers {
		if x == m {
			return true
		}
	}

	return false
}

// Parameter is one entry of a function's parameter clause.
type Parameter struct {
	Label              string // external label; "" means same as Name, "_" means unlabeled
	Name               string
	Type               string
	HasDefaultValue    bool
	DefaultValue       string
	IsMutableReference bool // inout
}

// ExternalLabel returns the label a call site must write, or "" when the
// parameter is unlabeled.
func (p Parameter) ExternalLabel() string {
	switch p.Label {
	case "":
		return p.Name
	case "_":
		return ""
	default:
		return p.Label
	}
}
