package syntax

// Placement says where the host inserts a generated declaration.
type Placement int

const (
	// PlacementStandalone declarations stand on their own: a constant in
	// place of the macro usage, or a peer declared next to the annotated type.
	PlacementStandalone Placement = iota
	// PlacementMember declarations are injected into the annotated type's body.
	PlacementMember
	// PlacementExtension declarations extend the annotated type from outside.
	PlacementExtension
)

// String returns a human-readable representation of the Placement.
func (p Placement) String() string {
	switch p {
	case PlacementStandalone:
		return "standalone"
	case PlacementMember:
		return "member"
	case PlacementExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Decl is a generated declaration.
type Decl interface {
	Placement() Placement
	decl()
}

// Constant is a constant declaration such as `static let appIcon = "app_icon"`.
type Constant struct {
	Static bool
	Name   string
	Value  Expr
}

func (*Constant) Placement() Placement { return PlacementStandalone }
func (*Constant) decl()                {}

// Protocol is an interface declaration.
type Protocol struct {
	Access     string // "public", or empty
	Name       string
	Refines    []string
	Properties []PropertyRequirement
	Methods    []MethodRequirement
}

func (*Protocol) Placement() Placement { return PlacementStandalone }
func (*Protocol) decl()                {}

// PropertyRequirement is `var name: Type { get }`.
type PropertyRequirement struct {
	Name string
	Type string
}

// MethodRequirement is a method signature without a body.
type MethodRequirement struct {
	Static bool
	Name   string
	Params []Param
	Async  bool
	Throws bool
	Result string
}

// Param is a parameter of a generated signature. Generated signatures never
// carry default values.
type Param struct {
	Label string // external label; "" means same as Name, "_" means unlabeled
	Name  string
	Type  string
	InOut bool
}

// Initializer is an `init` declaration.
type Initializer struct {
	Modifiers []string
	Failable  bool
	Params    []Param
	Body      []Stmt
}

func (*Initializer) Placement() Placement { return PlacementMember }
func (*Initializer) decl()                {}

// Function is a method declaration with a body.
type Function struct {
	Modifiers []string
	Name      string
	Params    []Param
	Result    string
	Body      []Stmt
}

func (*Function) Placement() Placement { return PlacementMember }
func (*Function) decl()                {}

// Extension declares conformances for an existing type.
type Extension struct {
	Extended     string
	Conformances []string
}

func (*Extension) Placement() Placement { return PlacementExtension }
func (*Extension) decl()                {}
