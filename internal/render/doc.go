// Package render prints generated syntax in the host language and writes
// rendered expansions to disk.
//
// Printing is deterministic: the same tree always yields the same bytes, with
// four-space indentation and no trailing whitespace.
//
// Printed shapes:
//   - Constants: static let appIcon = "app_icon"
//   - Protocols with property and method requirements
//   - Initializers and functions with bind and super-call statements
//   - Extensions declaring conformances
//   - Expressions: tuples, calls, subscripts, casts, escaped string literals
package render
