package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/mapping"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)

	return t
}

func renderDecisions(w io.Writer, decisions []mapping.Decision) {
	t := newTable(w, table.Row{"Source", "Target", "Size", "Category", "Signal", "Origin", "Match"})

	for _, d := range decisions {
		target := d.Target
		if target == "" {
			target = "-"
		}

		t.AppendRow(table.Row{d.Source, target, d.Cardinality, d.Category, d.Signal, d.Origin, d.Outcome})
	}

	t.Render()
}

func renderDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	all := diags.All()
	if len(all) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)

	for _, d := range all {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func renderReport(w io.Writer, rep mapping.Report) {
	status := "valid"
	if !rep.Valid {
		status = "invalid"
	}

	_, _ = fmt.Fprintf(w, "\nMapping is %s\n", status)

	for _, e := range rep.Errors {
		_, _ = fmt.Fprintf(w, "  error: %s\n", e)
	}

	for _, warn := range rep.Warnings {
		_, _ = fmt.Fprintf(w, "  warning: %s\n", warn)
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ", ")
}

// jsonDiagnostic is the JSON form of a diagnostic.
type jsonDiagnostic struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Source      string   `json:"source,omitempty"`
	Target      string   `json:"target,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func toJSONDiagnostics(diags diagnostic.Diagnostics) []jsonDiagnostic {
	all := diags.All()
	out := make([]jsonDiagnostic, 0, len(all))

	for _, d := range all {
		out = append(out, jsonDiagnostic{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Source:      d.Source,
			Target:      d.Target,
			Suggestions: d.Suggestions,
		})
	}

	return out
}

// jsonReport is the JSON form of a validation report.
type jsonReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func toJSONReport(rep mapping.Report) jsonReport {
	return jsonReport{
		Valid:    rep.Valid,
		Errors:   nonNil(rep.Errors),
		Warnings: nonNil(rep.Warnings),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
