package expand

import (
	"fmt"

	"macro-synth/internal/diagnostic"
	"macro-synth/internal/syntax"
)

// echoRule pairs an expression with its own source text: `(a + b, "a + b")`.
type echoRule struct{}

func (echoRule) Name() string { return "stringify" }

func (echoRule) Expand(req *Request, _ *diagnostic.Sink) (Result, error) {
	arg, ok := req.Arguments.First()
	if !ok || arg.Value.IsZero() {
		return Result{}, fmt.Errorf("%w: stringify requires an expression argument", ErrMalformedInvocation)
	}

	text := arg.Value.Text

	return Result{
		Expression: syntax.Tuple{Elements: []syntax.Expr{
			syntax.Raw{Text: text},
			syntax.StringLiteral{Value: text},
		}},
	}, nil
}
