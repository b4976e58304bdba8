// Package diagnostic provides severity-tagged messages bound to a source
// location, for both expansion rules and input validation.
//
// Key capabilities:
//   - Stable (domain, id) message identity derived from severity and text
//   - A per-request Sink that rules write to and the dispatcher drains
//   - Deduplication of repeated diagnostics at the same location
//   - Validation reports with machine-readable codes
package diagnostic
