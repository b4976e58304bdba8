package naming

import "sort"

// SuggestThreshold is the minimum normalized similarity for a suggestion.
const SuggestThreshold = 0.6

// Suggestion is a known name scored against a misspelled one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// SuggestThreshold, best first. Ties are broken by name for determinism.
func Rank(name string, candidates []string) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		score := NormalizedLevenshteinScore(name, c)
		if score < SuggestThreshold {
			continue
		}

		out = append(out, Suggestion{Name: c, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns the closest candidate to name, if any is close enough.
func Suggest(name string, candidates []string) (string, bool) {
	ranked := Rank(name, candidates)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}
