package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SnakeToCamel converts a snake_case string into a camelCase identifier.
//
// The conversion is purely lexical: split on "_", lowercase the first
// segment, title-case every following segment (first letter upper, the rest
// lower), and concatenate. Examples:
//   - "app_icon" -> "appIcon"
//   - "ERROR_TIP" -> "errorTip"
//   - "empty_IMAGE_view" -> "emptyImageView"
func SnakeToCamel(s string) string {
	// Casers keep state between calls and must not be shared across
	// goroutines, so each conversion gets its own.
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	segments := strings.Split(s, "_")

	var b strings.Builder

	b.Grow(len(s))

	for i, seg := range segments {
		if i == 0 {
			b.WriteString(lower.String(seg))
			continue
		}

		b.WriteString(title.String(seg))
	}

	return b.String()
}

// LowerCamel lowercases the leading word of a Go identifier, leaving the
// rest as written: "ItemTitle" -> "itemTitle", "URLPath" -> "urlPath",
// "ID" -> "id".
func LowerCamel(s string) string {
	tokens := tokenizeCamelCase(s)
	if len(tokens) == 0 {
		return s
	}

	tokens[0] = strings.ToLower(tokens[0])

	return strings.Join(tokens, "")
}
