package diagnostic

import "macro-synth/internal/decl"

type dedupKey struct {
	id  MessageID
	loc decl.Location
}

// Dedup drops diagnostics whose identity and location repeat an earlier one,
// keeping the first occurrence and the original order.
func Dedup(diags []Diagnostic) []Diagnostic {
	if len(diags) < 2 {
		return diags
	}

	seen := make(map[dedupKey]struct{}, len(diags))
	out := make([]Diagnostic, 0, len(diags))

	for _, d := range diags {
		key := dedupKey{id: d.ID, loc: d.Location}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, d)
	}

	return out
}
