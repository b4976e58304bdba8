// Package expand is the transformation engine.
//
// An Engine routes a Request to the Rule registered under the request's
// macro identity. Rules are pure: they read the request, write diagnostics to
// a per-request Sink and return freshly built syntax. The engine holds only
// immutable configuration and is safe for concurrent use; ExpandAll fans a
// batch out over a bounded number of goroutines.
//
// Two failure tiers exist. A request the host could never have produced
// (a missing operand, a blank constant name, an unknown macro) returns an
// error wrapping ErrMalformedInvocation or ErrUnknownMacro. Anything the
// author of the annotated code can fix is reported as a Diagnostic and the
// rule returns whatever partial output is still well formed.
package expand
