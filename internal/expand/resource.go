package expand

import (
	"fmt"
	"strings"

	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/syntax"
)

// resourceRule reads a key from the resource table and casts it
// conditionally: `Bundle.main.object(forInfoDictionaryKey: key) as? T`.
type resourceRule struct {
	table       ResourceTable
	defaultType string
}

func (resourceRule) Name() string { return "mainBundle" }

func (r resourceRule) Expand(req *Request, sink *diagnostic.Sink) (Result, error) {
	key, ok := req.Arguments.First()
	if !ok || strings.TrimSpace(key.Value.Text) == "" {
		sink.Error(req.Location, msgMissingKey)
		return Result{Expression: syntax.Empty{}}, nil
	}

	typ := r.defaultType

	if arg, ok := req.Arguments.At(1); ok {
		if arg.Value.Kind == decl.ExprMetatype {
			typ = arg.Value.Base
		} else {
			sink.Warning(req.Location, fmt.Sprintf(msgTypeNotMetatype, r.defaultType))
		}
	}

	return Result{
		Expression: syntax.Cast{
			Value:       r.table.Lookup(syntax.Raw{Text: strings.TrimSpace(key.Value.Text)}),
			Type:        typ,
			Conditional: true,
		},
	}, nil
}
