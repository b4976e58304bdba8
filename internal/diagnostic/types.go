package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"macro-synth/internal/decl"
)

// Domain is the namespace of every MessageID this module produces.
const Domain = "MacroSynthDiagnostic"

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MessageID identifies a diagnostic message so repeated identical
// diagnostics can be recognized.
type MessageID struct {
	Domain string
	ID     string
}

// String returns "domain/id".
func (m MessageID) String() string {
	return m.Domain + "/" + m.ID
}

// NewMessageID derives the identity of a message from its severity and text.
func NewMessageID(sev Severity, message string) MessageID {
	return MessageID{Domain: Domain, ID: sev.String() + message}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// ID is derived from Severity and Message.
	ID MessageID
	// Location is the node that triggered the diagnostic.
	Location decl.Location
	// Code classifies validation diagnostics; empty for rule diagnostics.
	Code string
	// Subject names what the diagnostic is about (a request, a member path).
	Subject string
}

// New builds a diagnostic with its identity filled in.
func New(sev Severity, loc decl.Location, message string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Message:  message,
		ID:       NewMessageID(sev, message),
		Location: loc,
	}
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if !d.Location.IsZero() {
		prefix = append(prefix, d.Location.String())
	}

	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	msg := d.Severity.String() + ": " + d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("%s: [%s] %s", d.Severity, d.Code, d.Message)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics holds the outcome of validating input before expansion.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject string, loc decl.Location) {
	diag := New(SeverityError, loc, message)
	diag.Code = code
	diag.Subject = subject
	d.Errors = append(d.Errors, diag)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string, loc decl.Location) {
	diag := New(SeverityWarning, loc, message)
	diag.Code = code
	diag.Subject = subject
	d.Warnings = append(d.Warnings, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	out = append(out, d.Errors...)

	return append(out, d.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
