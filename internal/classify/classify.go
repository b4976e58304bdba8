// Package classify filters a declaration's members by shape and visibility.
package classify

import "macro-synth/internal/decl"

// NonPrivateFields returns the fields of members whose visibility is not
// private, in declaration order.
func NonPrivateFields(members []decl.Member) []*decl.Field {
	var out []*decl.Field

	for _, m := range members {
		f, ok := m.(*decl.Field)
		if !ok || f.Visibility.IsPrivate() {
			continue
		}

		out = append(out, f)
	}

	return out
}

// NonPrivateFunctions returns the methods of members whose visibility is not
// private, in declaration order. Initializers are not methods and are left
// out; see Initializers.
func NonPrivateFunctions(members []decl.Member) []*decl.Function {
	var out []*decl.Function

	for _, m := range members {
		f, ok := m.(*decl.Function)
		if !ok || f.IsInitializer() || f.Visibility.IsPrivate() {
			continue
		}

		out = append(out, f)
	}

	return out
}

// Initializers returns every initializer regardless of visibility.
func Initializers(members []decl.Member) []*decl.Function {
	var out []*decl.Function

	for _, m := range members {
		if f, ok := m.(*decl.Function); ok && f.IsInitializer() {
			out = append(out, f)
		}
	}

	return out
}

// Methods returns every method regardless of visibility.
func Methods(members []decl.Member) []*decl.Function {
	var out []*decl.Function

	for _, m := range members {
		if f, ok := m.(*decl.Function); ok && !f.IsInitializer() {
			out = append(out, f)
		}
	}

	return out
}
