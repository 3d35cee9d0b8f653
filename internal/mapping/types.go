package mapping

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/detect"
	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/match"
)

// Mapping associates source axis names with target axis names.
type Mapping map[string]string

// Override is a caller-supplied partial Mapping with highest precedence.
type Override = Mapping

// Sources returns the source names, sorted.
func (m Mapping) Sources() []string {
	return slices.Sorted(maps.Keys(m))
}

// Targets returns the distinct target names, sorted.
func (m Mapping) Targets() []string {
	seen := make(map[string]struct{}, len(m))
	for _, t := range m {
		seen[t] = struct{}{}
	}

	return slices.Sorted(maps.Keys(seen))
}

// Clone returns an independent copy. Cloning nil yields an empty Mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	maps.Copy(out, m)

	return out
}

// Equal reports whether both mappings hold the same pairs.
func (m Mapping) Equal(other Mapping) bool {
	return maps.Equal(m, other)
}

// IsIdentity reports whether source maps to itself.
func (m Mapping) IsIdentity(source string) bool {
	t, ok := m[source]
	return ok && t == source
}

// CheckPairs returns an error for the first entry, in source order, whose
// source or target is blank.
func (m Mapping) CheckPairs() error {
	for _, src := range m.Sources() {
		if strings.TrimSpace(src) == "" || strings.TrimSpace(m[src]) == "" {
			return fmt.Errorf("override %q: %q: source and target must be non-empty", src, m[src])
		}
	}

	return nil
}

// Duplicate is a target assigned from more than one source.
type Duplicate struct {
	Target  string
	Sources []string
}

// Duplicates returns every target assigned from two or more sources,
// sorted by target, with sorted sources.
func (m Mapping) Duplicates() []Duplicate {
	bySource := make(map[string][]string)
	for _, s := range m.Sources() {
		bySource[m[s]] = append(bySource[m[s]], s)
	}

	var out []Duplicate

	for _, t := range slices.Sorted(maps.Keys(bySource)) {
		if len(bySource[t]) > 1 {
			out = append(out, Duplicate{Target: t, Sources: bySource[t]})
		}
	}

	return out
}

// Options control Builder.Build.
type Options struct {
	// Overrides are committed before auto-detection.
	Overrides Override
	// OverridesMustMatchSchema flags override targets the schema does not
	// declare. Such overrides are still applied.
	OverridesMustMatchSchema bool
	// AllowDuplicates commits an override whose target is already taken
	// (it is flagged either way). When false the later override is dropped.
	AllowDuplicates bool
}

// Origin tells how a source axis was handled.
type Origin int

const (
	OriginUnmapped Origin = iota
	OriginOverride
	OriginAuto
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginOverride:
		return "override"
	case OriginAuto:
		return "auto"
	default:
		return "unmapped"
	}
}

// Decision records how one source axis was handled.
type Decision struct {
	Source      string
	Target      string
	Origin      Origin
	Category    axis.Category
	Signal      detect.Signal
	Outcome     match.Outcome
	Cardinality int
}

// Result is the outcome of Builder.Build. It is freshly allocated per call.
type Result struct {
	Mapping Mapping
	// UnmappedSources are dataset axes without a target, in dataset order.
	UnmappedSources []string
	// UnmappedTargets are schema names without a source, in schema order.
	UnmappedTargets []string
	// Duplicates are targets committed from more than one source.
	Duplicates []Duplicate
	// Decisions holds one entry per dataset axis, in dataset order.
	Decisions   []Decision
	Diagnostics diagnostic.Diagnostics
}

// Complete reports whether every source and every target was mapped
// without duplicates.
func (r *Result) Complete() bool {
	return len(r.UnmappedSources) == 0 && len(r.UnmappedTargets) == 0 && len(r.Duplicates) == 0
}
