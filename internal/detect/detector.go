package detect

import (
	"axis-mapper/internal/axis"
	"axis-mapper/internal/pattern"
)

// Detection is the outcome of classifying one axis.
type Detection struct {
	Category axis.Category
	Signal   Signal
}

// Known reports whether the axis was classified.
func (d Detection) Known() bool {
	return d.Category.Known()
}

type step struct {
	signal   Signal
	strategy Strategy
}

// Detector runs the fixed strategy cascade. It holds no mutable state and
// is safe for concurrent use.
type Detector struct {
	steps []step
}

// Option configures a Detector.
type Option func(*settings)

type settings struct {
	minValueCardinality int
}

// WithMinValueCardinality sets the cardinality an axis must exceed before
// the value-range heuristic is applied. Negative values are treated as zero.
func WithMinValueCardinality(n int) Option {
	return func(s *settings) {
		s.minValueCardinality = max(n, 0)
	}
}

// New creates a Detector backed by the given registry.
// A nil registry selects pattern.Default().
func New(reg *pattern.Registry, opts ...Option) *Detector {
	if reg == nil {
		reg = pattern.Default()
	}

	s := settings{minValueCardinality: DefaultMinValueCardinality}
	for _, opt := range opts {
		opt(&s)
	}

	return &Detector{steps: []step{
		{SignalName, ByName(reg)},
		{SignalStandardName, ByStandardName(reg)},
		{SignalAxisCode, ByAxisCode(reg)},
		{SignalValueRange, ByValueRange(s.minValueCardinality)},
	}}
}

// Classify returns the category of the axis, or axis.Unknown.
func (d *Detector) Classify(a *axis.Axis) axis.Category {
	return d.Explain(a).Category
}

// Explain returns the category together with the signal that produced it.
func (d *Detector) Explain(a *axis.Axis) Detection {
	if a == nil {
		return Detection{Category: axis.Unknown, Signal: SignalNone}
	}

	for _, st := range d.steps {
		if cat, ok := st.strategy(a); ok && cat.Known() {
			return Detection{Category: cat, Signal: st.signal}
		}
	}

	return Detection{Category: axis.Unknown, Signal: SignalNone}
}
