package diagnostic

import "macro-synth/internal/decl"

// Sink accumulates the diagnostics of a single expansion request. It is
// created by the dispatcher, written by one rule, and drained at the end of
// the request. A Sink is not safe for concurrent use and is never shared
// between requests.
type Sink struct {
	items []Diagnostic
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error records an error-severity diagnostic at loc.
func (s *Sink) Error(loc decl.Location, message string) {
	s.items = append(s.items, New(SeverityError, loc, message))
}

// Warning records a warning-severity diagnostic at loc.
func (s *Sink) Warning(loc decl.Location, message string) {
	s.items = append(s.items, New(SeverityWarning, loc, message))
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int {
	return len(s.items)
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.IsError() {
			return true
		}
	}

	return false
}

// Drain returns the recorded diagnostics in recording order and empties the
// sink.
func (s *Sink) Drain() []Diagnostic {
	out := s.items
	s.items = nil

	return out
}
