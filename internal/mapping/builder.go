package mapping

import (
	"fmt"
	"slices"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/detect"
	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/match"
	"axis-mapper/internal/schema"
)

// maxSuggestions caps "did you mean" hints per diagnostic.
const maxSuggestions = 3

// Builder produces Mappings. It holds no per-call state and is safe for
// concurrent use.
type Builder struct {
	detector *detect.Detector
	resolver *match.Resolver
}

// NewBuilder creates a Builder. Nil arguments select the defaults backed by
// pattern.Default().
func NewBuilder(detector *detect.Detector, resolver *match.Resolver) *Builder {
	if detector == nil {
		detector = detect.New(nil)
	}

	if resolver == nil {
		resolver = match.NewResolver(nil)
	}

	return &Builder{detector: detector, resolver: resolver}
}

// buildState is the per-call bookkeeping of Build.
type buildState struct {
	ds          *axis.Dataset
	sch         *schema.Schema
	result      *Result
	decisions   map[string]Decision
	takenSource map[string]bool
	seen        map[string]bool   // axis names visited by autoDetect
	takenTarget map[string]string // target -> first source
}

// Build maps the dataset's axes onto the schema. It never fails: anything
// that cannot be mapped is reported in the Result.
func (b *Builder) Build(ds *axis.Dataset, sch *schema.Schema, opts Options) *Result {
	st := &buildState{
		ds:          ds,
		sch:         sch,
		result:      &Result{Mapping: make(Mapping)},
		decisions:   make(map[string]Decision, ds.Len()),
		takenSource: make(map[string]bool, ds.Len()),
		seen:        make(map[string]bool, ds.Len()),
		takenTarget: make(map[string]string, sch.Len()),
	}

	st.applyOverrides(opts)
	b.autoDetect(st)
	st.auditTargets()

	seen := make(map[string]bool, ds.Len())

	for i := 0; i < ds.Len(); i++ {
		a := &ds.Axes[i]

		dec := st.decisions[a.Name]
		if seen[a.Name] {
			dec = Decision{Source: a.Name, Cardinality: a.Len()}
		}

		seen[a.Name] = true
		st.result.Decisions = append(st.result.Decisions, dec)

		if dec.Origin == OriginUnmapped {
			st.result.UnmappedSources = append(st.result.UnmappedSources, a.Name)
		}
	}

	st.result.Duplicates = st.result.Mapping.Duplicates()

	return st.result
}

func (st *buildState) applyOverrides(opts Options) {
	diags := &st.result.Diagnostics

	for _, src := range opts.Overrides.Sources() {
		tgt := opts.Overrides[src]

		a, ok := st.ds.Lookup(src)
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeOverrideSourceMissing,
				Message:     "override names a source axis that does not exist in the dataset; skipped",
				Source:      src,
				Target:      tgt,
				Suggestions: match.Suggest(src, st.ds.Names(), maxSuggestions),
			})

			continue
		}

		if opts.OverridesMustMatchSchema && !st.sch.Contains(tgt) {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeOverrideNotInSchema,
				Message:     "override target is not declared by the schema; applied anyway",
				Source:      src,
				Target:      tgt,
				Suggestions: match.Suggest(tgt, st.sch.Names(), maxSuggestions),
			})
		}

		st.takenSource[src] = true

		if owner, taken := st.takenTarget[tgt]; taken {
			if !opts.AllowDuplicates {
				diags.AddWarning(diagnostic.CodeDuplicateTarget,
					fmt.Sprintf("target already assigned from %q; override dropped", owner), src, tgt)
				st.unmapped(src, Decision{Source: src, Cardinality: a.Len()})

				continue
			}

			diags.AddWarning(diagnostic.CodeDuplicateTarget,
				fmt.Sprintf("target also assigned from %q", owner), src, tgt)
		} else {
			st.takenTarget[tgt] = src
		}

		st.result.Mapping[src] = tgt
		st.decisions[src] = Decision{
			Source:      src,
			Target:      tgt,
			Origin:      OriginOverride,
			Cardinality: a.Len(),
		}
	}
}

func (b *Builder) autoDetect(st *buildState) {
	for i := 0; i < st.ds.Len(); i++ {
		a := &st.ds.Axes[i]
		if st.seen[a.Name] {
			st.result.Diagnostics.AddWarning(diagnostic.CodeDuplicateSource,
				"dataset holds another axis with this name; only the first is mapped", a.Name, "")

			continue
		}

		st.seen[a.Name] = true

		if st.takenSource[a.Name] {
			continue
		}

		available := st.availableTargets()
		det := b.detector.Explain(a)
		dec := Decision{
			Source:      a.Name,
			Category:    det.Category,
			Signal:      det.Signal,
			Cardinality: a.Len(),
		}

		if !det.Known() {
			st.unmapped(a.Name, dec)
			st.result.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        diagnostic.CodeUnmappedSource,
				Message:     "could not determine what the axis represents",
				Source:      a.Name,
				Suggestions: match.Suggest(a.Name, available, maxSuggestions),
			})

			continue
		}

		res := b.resolver.Explain(det.Category, a.Len(), available)
		dec.Outcome = res.Outcome

		if res.Outcome == match.Unresolved {
			st.unmapped(a.Name, dec)
			st.result.Diagnostics.AddWarning(diagnostic.CodeUnmappedSource,
				fmt.Sprintf("classified as %s (by %s, %d values) but no remaining schema name fits, available: %v",
					det.Category, det.Signal, a.Len(), available),
				a.Name, "")

			continue
		}

		dec.Target = res.Target
		dec.Origin = OriginAuto
		st.decisions[a.Name] = dec
		st.result.Mapping[a.Name] = res.Target
		st.takenTarget[res.Target] = a.Name
	}
}

func (st *buildState) auditTargets() {
	for _, tgt := range st.sch.Names() {
		if _, taken := st.takenTarget[tgt]; taken {
			continue
		}

		if slices.Contains(st.result.UnmappedTargets, tgt) {
			continue
		}

		st.result.UnmappedTargets = append(st.result.UnmappedTargets, tgt)
		st.result.Diagnostics.AddWarning(diagnostic.CodeUnmappedTarget,
			"no source axis was mapped to this schema name", "", tgt)
	}
}

// availableTargets returns the schema names not yet taken, in schema order.
func (st *buildState) availableTargets() []string {
	var out []string

	for _, tgt := range st.sch.Names() {
		if _, taken := st.takenTarget[tgt]; !taken {
			out = append(out, tgt)
		}
	}

	return out
}

func (st *buildState) unmapped(src string, dec Decision) {
	dec.Origin = OriginUnmapped
	st.decisions[src] = dec
}
