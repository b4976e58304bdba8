package expand

import (
	"fmt"
	"strings"

	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/naming"
	"macro-synth/internal/syntax"
)

// constantRule declares a static constant named after a snake_case literal:
// "app_icon" becomes `static let appIcon = "app_icon"`.
type constantRule struct{}

func (constantRule) Name() string { return "Constant" }

func (constantRule) Expand(req *Request, _ *diagnostic.Sink) (Result, error) {
	arg, ok := req.Arguments.First()
	if !ok {
		return Result{}, fmt.Errorf("%w: Constant requires a string literal argument", ErrMalformedInvocation)
	}

	if arg.Value.Kind != decl.ExprString {
		return Result{}, fmt.Errorf("%w: Constant argument must be a string literal, got %s",
			ErrMalformedInvocation, arg.Value.Kind)
	}

	if strings.TrimSpace(arg.Value.Value) == "" {
		return Result{}, fmt.Errorf("%w: Constant name literal is empty", ErrMalformedInvocation)
	}

	return Result{
		Declarations: []syntax.Decl{&syntax.Constant{
			Static: true,
			Name:   naming.SnakeToCamel(arg.Value.Value),
			Value:  syntax.StringLiteral{Value: arg.Value.Value},
		}},
	}, nil
}
