package request

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- StringOrArray ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// UnmarshalTOML accepts a string or an array of strings.
func (s *StringOrArray) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		if v != "" {
			*s = StringOrArray{v}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case []any:
		out := make(StringOrArray, 0, len(v))

		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in array, got %T", item)
			}

			out = append(out, str)
		}

		*s = out

		return nil

	default:
		return fmt.Errorf("expected string or array, got %T", data)
	}
}

// --- ArgumentList ---

// UnmarshalYAML implements custom YAML unmarshaling for ArgumentList.
// Accepts:
//   - Single scalar: "a + b"
//   - Array of scalars: ['"CFBundleVersion"', Int.self]
//   - Array with labels: [{label: isSubclass, value: "true"}]
//
// Scalars are taken verbatim, so `true` and `42` keep their source text.
func (a *ArgumentList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = ArgumentList{{Value: node.Value}}

		return nil

	case yaml.SequenceNode:
		out := make(ArgumentList, 0, len(node.Content))

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, ArgumentSpec{Value: item.Value})

			case yaml.MappingNode:
				arg, err := parseArgumentFromMap(item)
				if err != nil {
					return err
				}

				out = append(out, arg)

			default:
				return fmt.Errorf("expected scalar or map in arguments, got %v", item.Kind)
			}
		}

		*a = out

		return nil

	default:
		return fmt.Errorf("expected scalar or array of arguments, got %v", node.Kind)
	}
}

// parseArgumentFromMap parses {label: x, value: y}. The value is kept as
// written, whatever its YAML tag.
func parseArgumentFromMap(node *yaml.Node) (ArgumentSpec, error) {
	var arg ArgumentSpec

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return ArgumentSpec{}, fmt.Errorf("argument %s must be a scalar", key.Value)
		}

		switch key.Value {
		case "label":
			arg.Label = val.Value
		case "value":
			arg.Value = val.Value
		default:
			return ArgumentSpec{}, fmt.Errorf("unknown argument key %q (expected label or value)", key.Value)
		}
	}

	if arg.Value == "" {
		return ArgumentSpec{}, errors.New("argument map requires a value")
	}

	return arg, nil
}

// UnmarshalTOML accepts the same shapes as UnmarshalYAML. Non-string
// scalars are formatted back to their literal text.
func (a *ArgumentList) UnmarshalTOML(data any) error {
	items, ok := data.([]any)
	if !ok {
		items = []any{data}
	}

	out := make(ArgumentList, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			var arg ArgumentSpec

			for key, raw := range v {
				switch key {
				case "label":
					arg.Label = fmt.Sprint(raw)
				case "value":
					arg.Value = fmt.Sprint(raw)
				default:
					return fmt.Errorf("unknown argument key %q (expected label or value)", key)
				}
			}

			if arg.Value == "" {
				return errors.New("argument table requires a value")
			}

			out = append(out, arg)

		default:
			out = append(out, ArgumentSpec{Value: fmt.Sprint(v)})
		}
	}

	*a = out

	return nil
}
