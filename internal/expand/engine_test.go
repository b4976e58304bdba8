package expand_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-synth/internal/decl"
	"macro-synth/internal/expand"
	"macro-synth/internal/render"
)

func args(texts ...string) decl.Arguments {
	out := make(decl.Arguments, 0, len(texts))
	for _, t := range texts {
		out = append(out, decl.Argument{Value: decl.ParseExpr(t)})
	}

	return out
}

func labeled(label, text string) decl.Argument {
	return decl.Argument{Label: label, Value: decl.ParseExpr(text)}
}

func declText(exp *expand.Expansion) string {
	return render.NewPrinter().Decls(exp.Declarations)
}

func exprText(exp *expand.Expansion) string {
	return render.NewPrinter().Expr(exp.Expression)
}

func messages(exp *expand.Expansion) []string {
	out := make([]string, 0, len(exp.Diagnostics))
	for _, d := range exp.Diagnostics {
		out = append(out, d.Severity.String()+": "+d.Message)
	}

	return out
}

func TestEngine_Macros(t *testing.T) {
	e := expand.New(expand.Options{})

	assert.Equal(t, []string{"Constant", "InterfaceGen", "Mappable", "mainBundle", "stringify"}, e.Macros())

	names := e.Macros()
	names[0] = "changed"
	assert.Equal(t, "Constant", e.Macros()[0], "Macros must return a copy")
}

func TestEngine_UnknownMacro(t *testing.T) {
	e := expand.New(expand.Options{})

	t.Run("suggests the closest identity", func(t *testing.T) {
		_, err := e.Expand(&expand.Request{Macro: "Mapable", Declaration: &decl.TypeDeclaration{}})
		require.ErrorIs(t, err, expand.ErrUnknownMacro)
		assert.Contains(t, err.Error(), `did you mean "Mappable"?`)
	})

	t.Run("no suggestion when nothing is close", func(t *testing.T) {
		_, err := e.Expand(&expand.Request{Macro: "Observable"})
		require.ErrorIs(t, err, expand.ErrUnknownMacro)
		assert.NotContains(t, err.Error(), "did you mean")
	})
}

func TestEngine_MalformedRequests(t *testing.T) {
	e := expand.New(expand.Options{})

	tests := []struct {
		name string
		req  *expand.Request
	}{
		{"nil request", nil},
		{"Mappable without declaration", &expand.Request{Macro: "Mappable"}},
		{"InterfaceGen without declaration", &expand.Request{Macro: "InterfaceGen"}},
		{"stringify without argument", &expand.Request{Macro: "stringify"}},
		{"Constant without argument", &expand.Request{Macro: "Constant"}},
		{"Constant with non-string argument", &expand.Request{Macro: "Constant", Arguments: args("42")}},
		{"Constant with blank literal", &expand.Request{Macro: "Constant", Arguments: args(`"   "`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := e.Expand(tt.req)
			require.ErrorIs(t, err, expand.ErrMalformedInvocation)
			assert.Nil(t, exp)
		})
	}
}

func TestEngine_Deterministic(t *testing.T) {
	e := expand.New(expand.Options{})
	req := &expand.Request{
		Macro:       "Mappable",
		Arguments:   decl.Arguments{labeled("isSubclass", "true")},
		Declaration: testResponse(),
	}

	first, err := e.Expand(req)
	require.NoError(t, err)

	second, err := e.Expand(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, declText(first), declText(second))
}

func TestEngine_FreshSinkPerRequest(t *testing.T) {
	e := expand.New(expand.Options{})
	failing := &expand.Request{Macro: "mainBundle"}
	clean := &expand.Request{Macro: "mainBundle", Arguments: args(`"CFBundleVersion"`)}

	exp, err := e.Expand(failing)
	require.NoError(t, err)
	require.Len(t, exp.Diagnostics, 1)

	exp, err = e.Expand(clean)
	require.NoError(t, err)
	assert.Empty(t, exp.Diagnostics)
}

func TestExpandAll(t *testing.T) {
	e := expand.New(expand.Options{})

	reqs := make([]*expand.Request, 0, 40)
	for i := range 40 {
		reqs = append(reqs, &expand.Request{
			Macro:     "Constant",
			Arguments: args(fmt.Sprintf(`"key_%d"`, i)),
		})
	}

	reqs[7] = &expand.Request{Macro: "Constnt"}

	outcomes, err := expand.ExpandAll(context.Background(), e, reqs, 4)
	require.NoError(t, err)
	require.Len(t, outcomes, len(reqs))

	for i, o := range outcomes {
		if i == 7 {
			require.ErrorIs(t, o.Err, expand.ErrUnknownMacro)
			assert.Nil(t, o.Expansion)

			continue
		}

		require.NoError(t, o.Err)
		assert.Equal(t, fmt.Sprintf(`static let key%d = "key_%d"`, i, i), declText(o.Expansion))
	}
}

func TestExpandAll_Cancelled(t *testing.T) {
	e := expand.New(expand.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := expand.ExpandAll(ctx, e, []*expand.Request{{Macro: "stringify", Arguments: args("x")}}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExpandAll_Empty(t *testing.T) {
	outcomes, err := expand.ExpandAll(context.Background(), expand.New(expand.Options{}), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}
