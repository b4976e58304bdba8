package expand

import (
	"fmt"
	"slices"

	"macro-synth/internal/diagnostic"
	"macro-synth/internal/logger"
	"macro-synth/internal/naming"
)

// Engine dispatches requests to rules by macro identity.
type Engine struct {
	rules map[string]Rule
	names []string
	log   logger.Logger
}

// New creates an Engine with the five built-in rules.
func New(opts Options) *Engine {
	opts = opts.withDefaults()

	e := &Engine{
		rules: make(map[string]Rule),
		log:   opts.Logger,
	}

	e.register(echoRule{})
	e.register(resourceRule{table: opts.Resources, defaultType: opts.DefaultResourceType})
	e.register(constantRule{})
	e.register(interfaceRule{conv: opts.Interface})
	e.register(mappableRule{conv: opts.Mapping, decoder: opts.Decoder})

	return e
}

func (e *Engine) register(r Rule) {
	if _, dup := e.rules[r.Name()]; dup {
		panic(fmt.Sprintf("expand: duplicate rule %q", r.Name()))
	}

	e.rules[r.Name()] = r
	e.names = append(e.names, r.Name())
	slices.Sort(e.names)
}

// Macros returns the registered macro identities in sorted order.
func (e *Engine) Macros() []string {
	return slices.Clone(e.names)
}

// Expand runs the rule registered for req.Macro. Each call gets its own
// diagnostic sink, so concurrent calls never observe each other.
func (e *Engine) Expand(req *Request) (*Expansion, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrMalformedInvocation)
	}

	rule, ok := e.rules[req.Macro]
	if !ok {
		if s, found := naming.Suggest(req.Macro, e.names); found {
			return nil, fmt.Errorf("%w %q at %s, did you mean %q?", ErrUnknownMacro, req.Macro, req.Location, s)
		}

		return nil, fmt.Errorf("%w %q at %s", ErrUnknownMacro, req.Macro, req.Location)
	}

	if dr, ok := rule.(DeclarationRule); ok && dr.RequiresDeclaration() && req.Declaration == nil {
		return nil, fmt.Errorf("%w: %s at %s must be attached to a type declaration",
			ErrMalformedInvocation, req.Macro, req.Location)
	}

	e.log.Debug("expanding", "macro", req.Macro, "location", req.Location.String())

	sink := diagnostic.NewSink()

	res, err := rule.Expand(req, sink)
	if err != nil {
		return nil, fmt.Errorf("expanding %s at %s: %w", req.Macro, req.Location, err)
	}

	exp := &Expansion{
		Macro:        req.Macro,
		Location:     req.Location,
		Expression:   res.Expression,
		Declarations: res.Declarations,
		Diagnostics:  diagnostic.Dedup(sink.Drain()),
	}

	e.log.Debug("expanded", "macro", req.Macro,
		"declarations", len(exp.Declarations), "diagnostics", len(exp.Diagnostics))

	return exp, nil
}
