// Package diag collects and prints positioned diagnostics for immtool.
package diag

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"sync"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one reported message.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Position string   `json:"position,omitempty"`
	Message  string   `json:"message"`
}

// Reporter writes diagnostics as they arrive, either as "pos: severity: msg"
// lines or as one JSON object per line.
type Reporter struct {
	mu       sync.Mutex
	w        io.Writer
	format   string
	fset     *token.FileSet
	errors   int
	warnings int
}

// NewReporter returns a reporter writing to w. format is "text" or "json";
// anything else falls back to text.
func NewReporter(w io.Writer, format string) *Reporter {
	if format != "json" {
		format = "text"
	}
	return &Reporter{w: w, format: format}
}

// SetFileSet sets the file set used to resolve positions.
func (r *Reporter) SetFileSet(fset *token.FileSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fset = fset
}

// Error reports an error at pos.
func (r *Reporter) Error(pos token.Pos, msg string) {
	r.report(SeverityError, pos, msg)
}

// Errorf reports an error without a position.
func (r *Reporter) Errorf(format string, args ...any) {
	r.report(SeverityError, token.NoPos, fmt.Sprintf(format, args...))
}

// Warning reports a warning at pos.
func (r *Reporter) Warning(pos token.Pos, msg string) {
	r.report(SeverityWarning, pos, msg)
}

// HasErrors reports whether any error was reported.
func (r *Reporter) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors > 0
}

// Counts returns the number of errors and warnings reported so far.
func (r *Reporter) Counts() (errors, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors, r.warnings
}

func (r *Reporter) report(sev Severity, pos token.Pos, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch sev {
	case SeverityError:
		r.errors++
	case SeverityWarning:
		r.warnings++
	}

	d := Diagnostic{Severity: sev, Message: msg}
	if pos.IsValid() && r.fset != nil {
		d.Position = r.fset.Position(pos).String()
	}

	if r.format == "json" {
		data, err := json.Marshal(d)
		if err != nil {
			fmt.Fprintf(r.w, "%s: %s\n", sev, msg)
			return
		}
		fmt.Fprintf(r.w, "%s\n", data)
		return
	}
	if d.Position != "" {
		fmt.Fprintf(r.w, "%s: %s: %s\n", d.Position, sev, msg)
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", sev, msg)
}
