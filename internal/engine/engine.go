// Package engine wires the pattern registry, detector, builder, validator,
// policy and renamer into one reusable object.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/detect"
	"axis-mapper/internal/mapping"
	"axis-mapper/internal/match"
	"axis-mapper/internal/pattern"
	"axis-mapper/internal/policy"
	"axis-mapper/internal/schema"
)

type settings struct {
	extra          pattern.Table
	minCardinality int
	logger         *zap.Logger
}

// Option configures New.
type Option func(*settings)

// WithPatterns appends entries to the built-in pattern table. Built-in
// entries keep precedence.
func WithPatterns(extra pattern.Table) Option {
	return func(s *settings) {
		s.extra.Entries = append(s.extra.Entries, extra.Entries...)
	}
}

// WithMinValueCardinality sets the cardinality an axis must exceed before
// its values are used for classification.
func WithMinValueCardinality(n int) Option {
	return func(s *settings) {
		s.minCardinality = n
	}
}

// WithLogger sets the logger used by the engine and its validation policy.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	registry *pattern.Registry
	detector *detect.Detector
	resolver *match.Resolver
	builder  *mapping.Builder
	logger   *zap.Logger
}

// New compiles the pattern registry once and builds an Engine. The only
// error it returns wraps a *pattern.ConfigurationError.
func New(opts ...Option) (*Engine, error) {
	s := settings{minCardinality: detect.DefaultMinValueCardinality}
	for _, opt := range opts {
		opt(&s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	reg := pattern.Default()

	if len(s.extra.Entries) > 0 {
		var err error

		reg, err = pattern.Compile(pattern.DefaultTable().Merge(s.extra))
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern table: %w", err)
		}
	}

	det := detect.New(reg, detect.WithMinValueCardinality(s.minCardinality))
	res := match.NewResolver(reg)

	return &Engine{
		registry: reg,
		detector: det,
		resolver: res,
		builder:  mapping.NewBuilder(det, res),
		logger:   s.logger,
	}, nil
}

// Registry returns the compiled registry.
func (e *Engine) Registry() *pattern.Registry {
	return e.registry
}

// Classify explains which category an axis belongs to.
func (e *Engine) Classify(a *axis.Axis) detect.Detection {
	return e.detector.Explain(a)
}

// Resolve explains how a category and cardinality resolve against names.
func (e *Engine) Resolve(cat axis.Category, cardinality int, names []string) match.Resolution {
	return e.resolver.Explain(cat, cardinality, names)
}

// Map builds a mapping from ds onto sch.
func (e *Engine) Map(ds *axis.Dataset, sch *schema.Schema, opts mapping.Options) *mapping.Result {
	return e.builder.Build(ds, sch, opts)
}

// Validate checks a mapping against sch.
func (e *Engine) Validate(m mapping.Mapping, sch *schema.Schema, opts mapping.ValidateOptions) mapping.Report {
	return mapping.Validate(m, sch, opts)
}

// Request drives Process.
type Request struct {
	Options mapping.Options
	Mode    mapping.Mode
	Action  policy.Action
	// Disabled returns the dataset unchanged without building a mapping.
	Disabled bool
}

// Outcome is everything Process produced.
type Outcome struct {
	// Dataset is the renamed dataset; nil when the policy rejected the mapping.
	Dataset *axis.Dataset
	Result  *mapping.Result
	Report  mapping.Report
	// Applied is the mapping after the policy ran.
	Applied mapping.Mapping
	Skipped bool
}

// Process builds, validates, enforces the policy and renames in one step.
// A policy rejection is returned as a *policy.ViolationError together with
// the partial Outcome.
func (e *Engine) Process(ds *axis.Dataset, sch *schema.Schema, req Request) (*Outcome, error) {
	if req.Disabled {
		e.logger.Debug("dimension mapping disabled")
		return &Outcome{Dataset: ds, Skipped: true}, nil
	}

	out := &Outcome{Result: e.builder.Build(ds, sch, req.Options)}
	out.Report = mapping.Validate(out.Result.Mapping, sch, mapping.ValidateOptions{Mode: req.Mode, Dataset: ds})

	applied, diags, err := policy.New(req.Action, e.logger).Enforce(out.Result.Mapping, out.Report, ds)
	out.Result.Diagnostics.Merge(diags)

	if err != nil {
		return out, err
	}

	if !applied.Equal(out.Result.Mapping) {
		e.logger.Info("policy repaired mapping",
			zap.Int("built", len(out.Result.Mapping)),
			zap.Int("applied", len(applied)))
	}

	out.Applied = applied
	out.Dataset = mapping.Apply(ds, applied)

	e.logger.Debug("dimension mapping applied",
		zap.Int("renames", len(mapping.RenamePlan(applied))),
		zap.Strings("unmapped_sources", out.Result.UnmappedSources),
		zap.Strings("unmapped_targets", out.Result.UnmappedTargets))

	return out, nil
}
