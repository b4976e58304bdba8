package expand

import (
	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/syntax"
)

// Request is one expansion request for one macro usage site.
type Request struct {
	Macro     string
	Location  decl.Location
	Arguments decl.Arguments
	// Declaration is the annotated type for attached macros, nil for
	// freestanding ones.
	Declaration *decl.TypeDeclaration
}

// Result is what a rule produces. Expression macros set Expression,
// declaration macros set Declarations.
type Result struct {
	Expression   syntax.Expr
	Declarations []syntax.Decl
}

// Expansion is the outcome of a request that reached its rule.
type Expansion struct {
	Macro        string
	Location     decl.Location
	Expression   syntax.Expr
	Declarations []syntax.Decl
	Diagnostics  []diagnostic.Diagnostic
}

// HasErrors reports whether any error-severity diagnostic was produced.
func (e *Expansion) HasErrors() bool {
	for _, d := range e.Diagnostics {
		if d.IsError() {
			return true
		}
	}

	return false
}

// ResultType returns the static type of the produced expression, or "" when
// the expansion produced declarations or no typed expression.
func (e *Expansion) ResultType() string {
	if e.Expression == nil {
		return ""
	}

	return syntax.ResultType(e.Expression)
}

// Rule is one transformation, registered under its macro identity.
type Rule interface {
	Name() string
	Expand(req *Request, sink *diagnostic.Sink) (Result, error)
}

// DeclarationRule is implemented by rules that must be attached to a type
// declaration.
type DeclarationRule interface {
	Rule
	RequiresDeclaration() bool
}

// diagLocation returns the first non-zero location.
func diagLocation(locs ...decl.Location) decl.Location {
	for _, l := range locs {
		if !l.IsZero() {
			return l
		}
	}

	return decl.Location{}
}
