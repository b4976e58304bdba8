package request

import (
	"errors"
	"fmt"
	"strings"

	"macro-synth/internal/decl"
)

// ParseArguments splits an argument clause such as
// `"key", Int.self` or `isSubclass: true` into labeled arguments.
// Commas inside string literals and brackets do not split. A label is an
// identifier directly followed by a colon at the start of an argument.
func ParseArguments(s string) (decl.Arguments, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}

	out := make(decl.Arguments, 0, len(parts))

	for i, part := range parts {
		label, value := splitLabel(part)
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("argument %d is empty", i+1)
		}

		out = append(out, decl.Argument{Label: label, Value: decl.ParseExpr(strings.TrimSpace(value))})
	}

	return out, nil
}

func splitTopLevel(s string) ([]string, error) {
	var (
		parts []string
		depth []rune
		start int
		inStr bool
	)

	closing := map[rune]rune{'(': ')', '[': ']', '{': '}'}

	for i := 0; i < len(s); i++ {
		c := rune(s[i])

		if inStr {
			switch c {
			case '\\':
				i++
			case '"':
				inStr = false
			}

			continue
		}

		switch c {
		case '"':
			inStr = true
		case '(', '[', '{':
			depth = append(depth, closing[c])
		case ')', ']', '}':
			if len(depth) == 0 || depth[len(depth)-1] != c {
				return nil, fmt.Errorf("unbalanced %q at offset %d", c, i)
			}

			depth = depth[:len(depth)-1]
		case ',':
			if len(depth) == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if inStr {
		return nil, errors.New("unterminated string literal")
	}

	if len(depth) > 0 {
		return nil, fmt.Errorf("missing %q", depth[len(depth)-1])
	}

	return append(parts, s[start:]), nil
}

func splitLabel(part string) (label, value string) {
	trimmed := strings.TrimLeft(part, " \t\n")

	end := 0
	for end < len(trimmed) && isIdentByte(trimmed[end], end == 0) {
		end++
	}

	if end == 0 {
		return "", part
	}

	rest := strings.TrimLeft(trimmed[end:], " \t")
	if !strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "::") {
		return "", part
	}

	return trimmed[:end], rest[1:]
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case !first && c >= '0' && c <= '9':
		return true
	default:
		return false
	}
}
