package analyze

import (
	"fmt"
	"strings"

	"macro-synth/internal/decl"
	"macro-synth/internal/request"
)

// DirectivePrefix starts every directive comment.
const DirectivePrefix = "//synth:"

// ParseDirective parses `//synth:Macro` or `//synth:Macro(args)`. ok is
// false when text is not a directive at all.
func ParseDirective(text string, loc decl.Location) (d Directive, ok bool, err error) {
	if !strings.HasPrefix(text, DirectivePrefix) {
		return Directive{}, false, nil
	}

	body := strings.TrimSpace(strings.TrimPrefix(text, DirectivePrefix))

	name, rest, hasArgs := strings.Cut(body, "(")
	name = strings.TrimSpace(name)

	if name == "" || strings.ContainsAny(name, " \t") {
		return Directive{}, true, fmt.Errorf("%s: malformed directive %q", loc, text)
	}

	d = Directive{Macro: name, Location: loc}

	if !hasArgs {
		return d, true, nil
	}

	if !strings.HasSuffix(rest, ")") {
		return Directive{}, true, fmt.Errorf("%s: directive %q is missing ')'", loc, text)
	}

	args, err := request.ParseArguments(strings.TrimSuffix(rest, ")"))
	if err != nil {
		return Directive{}, true, fmt.Errorf("%s: directive %s: %w", loc, name, err)
	}

	d.Arguments = args

	return d, true, nil
}
