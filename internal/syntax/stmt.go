package syntax

// Stmt is a generated statement.
type Stmt interface {
	stmt()
}

// Bind is `Target <op> Source`, the statement that ties a field to a keyed
// read from a decoder.
type Bind struct {
	Target   string
	Operator string
	Source   Expr
}

// SuperCall is `super.Method(label: arg, ...)`.
type SuperCall struct {
	Method string
	Args   []CallArg
}

func (Bind) stmt()      {}
func (SuperCall) stmt() {}
