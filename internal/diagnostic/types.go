package diagnostic

import (
	"fmt"
	"strings"

	"axis-mapper/internal/common"
)

// Diagnostic codes.
const (
	CodeOverrideSourceMissing = "override_source_missing"
	CodeOverrideNotInSchema   = "override_not_in_schema"
	CodeDuplicateTarget       = "duplicate_target"
	CodeUnmappedSource        = "unmapped_source"
	CodeUnmappedTarget        = "unmapped_target"
	CodeDuplicateSource       = "duplicate_source"
	CodeMissingSource         = "missing_source"
	CodeValidationFailed      = "validation_failed"
)

// Diagnostics holds all diagnostic information from one mapping run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source is the source axis name this relates to (if any).
	Source string
	// Target is the destination name this relates to (if any).
	Target string
	// Suggestions are close alternatives, best first.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, source, target string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Source: source, Target: target})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, target string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Source: source, Target: target})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, target string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Source: source, Target: target})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// ByCode returns every diagnostic with the given code, in All order.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.Source != "" && d.Target != "":
		prefix = d.Source + " -> " + d.Target
	case d.Source != "":
		prefix = d.Source
	case d.Target != "":
		prefix = "-> " + d.Target
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
