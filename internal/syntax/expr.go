package syntax

import "strings"

// Expr is a generated expression.
type Expr interface {
	expr()
}

// Raw is expression text copied verbatim from the input.
type Raw struct {
	Text string
}

// StringLiteral is a string literal whose content is escaped on printing.
type StringLiteral struct {
	Value string
}

// Tuple is a parenthesized, comma-separated list of expressions.
type Tuple struct {
	Elements []Expr
}

// Call is `Callee(label: arg, ...)`.
type Call struct {
	Callee string
	Args   []CallArg
}

// CallArg is one argument of a call.
type CallArg struct {
	Label string
	Value Expr
}

// Subscript is `Base[Index]`.
type Subscript struct {
	Base  string
	Index Expr
}

// Cast is `X as T`, or `X as? T` when Conditional.
type Cast struct {
	Value       Expr
	Type        string
	Conditional bool
}

// Empty is the placeholder returned when a rule cannot build an expression.
type Empty struct{}

func (Raw) expr()           {}
func (StringLiteral) expr() {}
func (Tuple) expr()         {}
func (Call) expr()          {}
func (Subscript) expr()     {}
func (Cast) expr()          {}
func (Empty) expr()         {}

// ResultType returns the static type an expression evaluates to when it can
// be read off the expression itself, and "" otherwise.
func ResultType(e Expr) string {
	switch x := e.(type) {
	case Cast:
		if x.Conditional {
			return x.Type + "?"
		}

		return x.Type
	case StringLiteral:
		return "String"
	case Tuple:
		parts := make([]string, 0, len(x.Elements))
		for _, el := range x.Elements {
			t := ResultType(el)
			if t == "" {
				return ""
			}

			parts = append(parts, t)
		}

		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return ""
	}
}
