package decl

import (
	"strconv"
	"strings"
)

// ExprKind is the lexical class of an expression.
type ExprKind int

const (
	ExprOther    ExprKind = iota
	ExprString            // "..."
	ExprBool              // true / false
	ExprInt               // 42, -7, 0x1F
	ExprFloat             // 3.14
	ExprMetatype          // T.self
)

// String returns a human-readable representation of the ExprKind.
func (k ExprKind) String() string {
	switch k {
	case ExprString:
		return "string"
	case ExprBool:
		return "bool"
	case ExprInt:
		return "int"
	case ExprFloat:
		return "float"
	case ExprMetatype:
		return "metatype"
	case ExprOther:
		return "expr"
	default:
		return unknownStr
	}
}

// Expr is an expression as the host wrote it.
type Expr struct {
	Kind ExprKind
	Text string // verbatim source text, including inner formatting
	// Value is the unquoted content of a string literal, or the literal text
	// of a bool or number.
	Value string
	// Base is T for a metatype expression T.self.
	Base string
}

// IsZero reports whether e carries no text.
func (e Expr) IsZero() bool {
	return e.Text == ""
}

// Bool returns the value of a boolean literal.
func (e Expr) Bool() (value, ok bool) {
	if e.Kind != ExprBool {
		return false, false
	}

	return e.Value == "true", true
}

// ParseExpr classifies expression text lexically. It does not parse
// operators or calls; anything that is not a single literal or a metatype
// reference is ExprOther with its text kept verbatim.
func ParseExpr(text string) Expr {
	trimmed := strings.TrimSpace(text)
	e := Expr{Kind: ExprOther, Text: text}

	switch {
	case trimmed == "true" || trimmed == "false":
		e.Kind = ExprBool
		e.Value = trimmed

	case isStringLiteral(trimmed):
		e.Kind = ExprString
		e.Value = unquote(trimmed)

	case isInt(trimmed):
		e.Kind = ExprInt
		e.Value = trimmed

	case isFloat(trimmed):
		e.Kind = ExprFloat
		e.Value = trimmed

	case strings.HasSuffix(trimmed, ".self") && isTypeName(strings.TrimSuffix(trimmed, ".self")):
		e.Kind = ExprMetatype
		e.Base = strings.TrimSuffix(trimmed, ".self")
	}

	return e
}

// isStringLiteral reports whether s is exactly one double-quoted literal
// without interpolation.
func isStringLiteral(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}

	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			if i+1 < len(body) && body[i+1] == '(' {
				return false
			}
			i++
		case '"':
			return false
		}
	}

	return true
}

func unquote(s string) string {
	body := s[1 : len(s)-1]
	if !strings.Contains(body, `\`) {
		return body
	}

	var b strings.Builder

	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}

		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String()
}

func isInt(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0o") {
		_, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 0, 64)
		return err == nil
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '_' {
			return false
		}
	}

	return s[0] != '_'
}

func isFloat(s string) bool {
	if !strings.ContainsAny(s, ".eE") {
		return false
	}

	_, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)

	return err == nil
}

// isTypeName accepts dotted identifiers such as Int or Foundation.URL.
func isTypeName(s string) bool {
	if s == "" {
		return false
	}

	for _, part := range strings.Split(s, ".") {
		if !isIdent(part) {
			return false
		}
	}

	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

// Argument is one entry of a macro usage's argument list.
type Argument struct {
	Label string // empty for unlabeled arguments
	Value Expr
}

// Arguments is an ordered argument list.
type Arguments []Argument

// First returns the first argument and true, or false when the list is empty.
func (a Arguments) First() (Argument, bool) {
	if len(a) == 0 {
		return Argument{}, false
	}

	return a[0], true
}

// At returns the argument at index i and true, or false when out of range.
func (a Arguments) At(i int) (Argument, bool) {
	if i < 0 || i >= len(a) {
		return Argument{}, false
	}

	return a[i], true
}

// Lookup returns the first argument carrying label.
func (a Arguments) Lookup(label string) (Argument, bool) {
	for _, arg := range a {
		if arg.Label == label {
			return arg, true
		}
	}

	return Argument{}, false
}
