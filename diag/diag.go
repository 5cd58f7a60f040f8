// Package diag accumulates and renders compiler diagnostics. Passes
// report structural problems here instead of failing; the pipeline
// inspects the bag after all passes to decide whether compilation may
// proceed.
package diag

import (
	"fmt"

	"github.com/gramlang/gram/ir"
)

// Severity captures how impactful a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}
	return "invalid"
}

// Diagnostic is one user-facing message with its source location.
type Diagnostic struct {
	Severity Severity
	Loc      ir.Location
	Message  string
}

func (d Diagnostic) String() string {
	if d.Loc.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Loc, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Bag collects diagnostics across passes. The zero Bag is ready to use.
type Bag struct {
	diags []Diagnostic
}

// Report appends a diagnostic.
func (b *Bag) Report(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// Errorf reports an error at loc.
func (b *Bag) Errorf(loc ir.Location, format string, args ...any) {
	b.Report(Diagnostic{Severity: SeverityError, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// Warnf reports a warning at loc.
func (b *Bag) Warnf(loc ir.Location, format string, args ...any) {
	b.Report(Diagnostic{Severity: SeverityWarning, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// Notef reports a note at loc.
func (b *Bag) Notef(loc ir.Location, format string, args ...any) {
	b.Report(Diagnostic{Severity: SeverityNote, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// Diagnostics returns everything reported so far, in report order.
func (b *Bag) Diagnostics() []Diagnostic { return b.diags }

// Len returns the number of reported diagnostics.
func (b *Bag) Len() int { return len(b.diags) }

// HasErrors reports whether any error-severity diagnostic was reported.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
