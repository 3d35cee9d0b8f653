package mapping

import (
	"fmt"
	"strings"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/common"
	"axis-mapper/internal/schema"
)

// Mode selects how strictly a Mapping must match its schema.
type Mode int

const (
	// ModeFlexible only compares the number of mapped targets with the
	// schema length, and reports a mismatch as a warning.
	ModeFlexible Mode = iota
	// ModeStrict requires the target set to equal the schema's name set.
	ModeStrict
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFlexible:
		return "flexible"
	case ModeStrict:
		return "strict"
	default:
		return common.UnknownStr
	}
}

// ParseMode converts "strict" or "flexible" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return ModeStrict, nil
	case "flexible", "":
		return ModeFlexible, nil
	default:
		return ModeFlexible, fmt.Errorf("unknown validation mode %q (want strict or flexible)", s)
	}
}

// ValidateOptions control Validate.
type ValidateOptions struct {
	Mode Mode
	// Dataset, when set, additionally requires every mapped source to exist.
	Dataset *axis.Dataset
}

// Report is the outcome of Validate.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
	// Duplicates lists the targets assigned from several sources.
	Duplicates []Duplicate
}

// Validate inspects m against the schema. It never modifies its inputs.
func Validate(m Mapping, sch *schema.Schema, opts ValidateOptions) Report {
	var rep Report

	targets := m.Targets()
	declared := sch.Set()

	switch opts.Mode {
	case ModeStrict:
		mapped := make(map[string]struct{}, len(targets))
		for _, t := range targets {
			mapped[t] = struct{}{}
		}

		var missing, extra []string

		for _, name := range common.SortedCopy(common.Dedup(sch.Names())) {
			if _, ok := mapped[name]; !ok {
				missing = append(missing, name)
			}
		}

		for _, t := range targets {
			if _, ok := declared[t]; !ok {
				extra = append(extra, t)
			}
		}

		if len(missing) > 0 {
			rep.Errors = append(rep.Errors, fmt.Sprintf("missing target dimensions in mapping: %v", missing))
		}

		if len(extra) > 0 {
			rep.Errors = append(rep.Errors, fmt.Sprintf("target dimensions not in schema: %v", extra))
		}
	default:
		if len(targets) != len(declared) {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf(
				"dimension count mismatch: schema expects %d dimensions, mapping provides %d",
				len(declared), len(targets)))
		}
	}

	if opts.Dataset != nil {
		for _, src := range m.Sources() {
			if !opts.Dataset.Has(src) {
				rep.Errors = append(rep.Errors, fmt.Sprintf("source dimension %q not found in dataset", src))
			}
		}
	}

	rep.Duplicates = m.Duplicates()
	for _, d := range rep.Duplicates {
		rep.Errors = append(rep.Errors, fmt.Sprintf("duplicate target dimension %q assigned from %v", d.Target, d.Sources))
	}

	rep.Valid = len(rep.Errors) == 0

	return rep
}
