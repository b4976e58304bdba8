package render

import (
	"fmt"
	"strings"

	"macro-synth/internal/syntax"
)

// DefaultIndent is the indentation unit of printed bodies.
const DefaultIndent = "    "

// Printer renders syntax nodes as host source text.
type Printer struct {
	indent string
}

// NewPrinter creates a Printer with the default indentation.
func NewPrinter() *Printer {
	return &Printer{indent: DefaultIndent}
}

// Decls prints declarations separated by a blank line.
func (p *Printer) Decls(decls []syntax.Decl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, p.Decl(d))
	}

	return strings.Join(parts, "\n\n")
}

// Decl prints a single declaration.
func (p *Printer) Decl(d syntax.Decl) string {
	switch x := d.(type) {
	case *syntax.Constant:
		return p.constant(x)
	case *syntax.Protocol:
		return p.protocol(x)
	case *syntax.Initializer:
		return p.initializer(x)
	case *syntax.Function:
		return p.function(x)
	case *syntax.Extension:
		return p.extension(x)
	default:
		panic(fmt.Sprintf("render: unsupported declaration %T", d))
	}
}

func (p *Printer) constant(c *syntax.Constant) string {
	var b strings.Builder
	if c.Static {
		b.WriteString("static ")
	}

	b.WriteString("let ")
	b.WriteString(c.Name)
	b.WriteString(" = ")
	b.WriteString(p.Expr(c.Value))

	return b.String()
}

func (p *Printer) protocol(pr *syntax.Protocol) string {
	var b strings.Builder
	if pr.Access != "" {
		b.WriteString(pr.Access)
		b.WriteByte(' ')
	}

	b.WriteString("protocol ")
	b.WriteString(pr.Name)

	if len(pr.Refines) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(pr.Refines, ", "))
	}

	if len(pr.Properties) == 0 && len(pr.Methods) == 0 {
		b.WriteString(" {}")
		return b.String()
	}

	b.WriteString(" {\n")

	for _, prop := range pr.Properties {
		fmt.Fprintf(&b, "%svar %s: %s { get }\n", p.indent, prop.Name, prop.Type)
	}

	if len(pr.Properties) > 0 && len(pr.Methods) > 0 {
		b.WriteByte('\n')
	}

	for _, m := range pr.Methods {
		b.WriteString(p.indent)
		b.WriteString(p.MethodSignature(m))
		b.WriteByte('\n')
	}

	b.WriteByte('}')

	return b.String()
}

// MethodSignature prints a method requirement without a body.
func (p *Printer) MethodSignature(m syntax.MethodRequirement) string {
	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}

	b.WriteString("func ")
	b.WriteString(m.Name)
	b.WriteString(p.params(m.Params))

	if m.Async {
		b.WriteString(" async")
	}

	if m.Throws {
		b.WriteString(" throws")
	}

	if m.Result != "" {
		b.WriteString(" -> ")
		b.WriteString(m.Result)
	}

	return b.String()
}

func (p *Printer) initializer(in *syntax.Initializer) string {
	var b strings.Builder
	writeModifiers(&b, in.Modifiers)
	b.WriteString("init")

	if in.Failable {
		b.WriteByte('?')
	}

	b.WriteString(p.params(in.Params))
	b.WriteString(p.body(in.Body))

	return b.String()
}

func (p *Printer) function(fn *syntax.Function) string {
	var b strings.Builder
	writeModifiers(&b, fn.Modifiers)
	b.WriteString("func ")
	b.WriteString(fn.Name)
	b.WriteString(p.params(fn.Params))

	if fn.Result != "" {
		b.WriteString(" -> ")
		b.WriteString(fn.Result)
	}

	b.WriteString(p.body(fn.Body))

	return b.String()
}

func (p *Printer) extension(e *syntax.Extension) string {
	var b strings.Builder
	b.WriteString("extension ")
	b.WriteString(e.Extended)

	if len(e.Conformances) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Conformances, ", "))
	}

	b.WriteString(" {}")

	return b.String()
}

func (p *Printer) params(params []syntax.Param) string {
	parts := make([]string, 0, len(params))

	for _, prm := range params {
		var b strings.Builder

		if prm.Label != "" && prm.Label != prm.Name {
			b.WriteString(prm.Label)
			b.WriteByte(' ')
		}

		b.WriteString(prm.Name)
		b.WriteString(": ")

		if prm.InOut {
			b.WriteString("inout ")
		}

		b.WriteString(prm.Type)
		parts = append(parts, b.String())
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *Printer) body(stmts []syntax.Stmt) string {
	if len(stmts) == 0 {
		return " {}"
	}

	var b strings.Builder
	b.WriteString(" {\n")

	for _, s := range stmts {
		b.WriteString(p.indent)
		b.WriteString(p.Stmt(s))
		b.WriteByte('\n')
	}

	b.WriteByte('}')

	return b.String()
}

// Stmt prints a single statement.
func (p *Printer) Stmt(s syntax.Stmt) string {
	switch x := s.(type) {
	case syntax.Bind:
		return x.Target + " " + x.Operator + " " + p.Expr(x.Source)
	case syntax.SuperCall:
		return "super." + x.Method + p.callArgs(x.Args)
	default:
		panic(fmt.Sprintf("render: unsupported statement %T", s))
	}
}

// Expr prints a single expression.
func (p *Printer) Expr(e syntax.Expr) string {
	switch x := e.(type) {
	case nil, syntax.Empty:
		return ""
	case syntax.Raw:
		return x.Text
	case syntax.StringLiteral:
		return Quote(x.Value)
	case syntax.Tuple:
		parts := make([]string, 0, len(x.Elements))
		for _, el := range x.Elements {
			parts = append(parts, p.Expr(el))
		}

		return "(" + strings.Join(parts, ", ") + ")"
	case syntax.Call:
		return x.Callee + p.callArgs(x.Args)
	case syntax.Subscript:
		return x.Base + "[" + p.Expr(x.Index) + "]"
	case syntax.Cast:
		op := " as "
		if x.Conditional {
			op = " as? "
		}

		return p.Expr(x.Value) + op + x.Type
	default:
		panic(fmt.Sprintf("render: unsupported expression %T", e))
	}
}

func (p *Printer) callArgs(args []syntax.CallArg) string {
	parts := make([]string, 0, len(args))

	for _, a := range args {
		if a.Label != "" {
			parts = append(parts, a.Label+": "+p.Expr(a.Value))
			continue
		}

		parts = append(parts, p.Expr(a.Value))
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func writeModifiers(b *strings.Builder, mods []string) {
	for _, m := range mods {
		b.WriteString(m)
		b.WriteByte(' ')
	}
}

// Quote returns s as a double-quoted host string literal.
func Quote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}

			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}
