// Package naming provides identifier case conversion and fuzzy name
// suggestions.
//
// Key functions:
//   - SnakeToCamel: converts snake_case literals to camelCase identifiers
//   - NormalizeIdent: normalizes identifiers for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name for a misspelled one
package naming
