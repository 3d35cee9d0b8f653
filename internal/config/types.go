// Package config loads axis-mapper settings from defaults, a YAML file,
// AXISMAP_ environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"

	"axis-mapper/internal/engine"
	"axis-mapper/internal/mapping"
	"axis-mapper/internal/pattern"
	"axis-mapper/internal/policy"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Default values.
const (
	DefaultValidation     = "warn"
	DefaultValidationMode = "flexible"
	DefaultOutput         = OutputTable
)

// Config holds all configuration options.
type Config struct {
	// DimensionMapping pins source axis names to target names.
	DimensionMapping map[string]string `koanf:"dimension_mapping"`
	// AllowOverride accepts override targets the schema does not declare
	// without a diagnostic.
	AllowOverride       bool            `koanf:"allow_override"`
	AllowDuplicates     bool            `koanf:"allow_duplicates"`
	Validation          string          `koanf:"validation"`
	ValidationMode      string          `koanf:"validation_mode"`
	MinValueCardinality int             `koanf:"min_value_cardinality"`
	Enabled             bool            `koanf:"enabled"`
	Patterns            []pattern.Entry `koanf:"patterns"`
	Verbose             bool            `koanf:"verbose"`
	Output              string          `koanf:"output"`
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	var errs []error

	if _, err := policy.ParseAction(c.Validation); err != nil {
		errs = append(errs, err)
	}

	if _, err := mapping.ParseMode(c.ValidationMode); err != nil {
		errs = append(errs, err)
	}

	if err := mapping.Mapping(c.DimensionMapping).CheckPairs(); err != nil {
		errs = append(errs, fmt.Errorf("dimension_mapping: %w", err))
	}

	if c.MinValueCardinality < 0 {
		errs = append(errs, fmt.Errorf("min_value_cardinality must be non-negative, got %d", c.MinValueCardinality))
	}

	if c.Output != OutputTable && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputTable, OutputJSON))
	}

	return errors.Join(errs...)
}

// EngineOptions returns the engine options the configuration implies.
func (c *Config) EngineOptions() []engine.Option {
	opts := []engine.Option{engine.WithMinValueCardinality(c.MinValueCardinality)}

	if len(c.Patterns) > 0 {
		opts = append(opts, engine.WithPatterns(pattern.Table{Entries: c.Patterns}))
	}

	return opts
}

// MappingOptions returns the builder options.
func (c *Config) MappingOptions() mapping.Options {
	return mapping.Options{
		Overrides:                mapping.Mapping(c.DimensionMapping).Clone(),
		OverridesMustMatchSchema: !c.AllowOverride,
		AllowDuplicates:          c.AllowDuplicates,
	}
}

// Request returns the engine request. Call Validate first; invalid enum
// values are reported again here.
func (c *Config) Request() (engine.Request, error) {
	action, err := policy.ParseAction(c.Validation)
	if err != nil {
		return engine.Request{}, err
	}

	mode, err := mapping.ParseMode(c.ValidationMode)
	if err != nil {
		return engine.Request{}, err
	}

	return engine.Request{
		Options:  c.MappingOptions(),
		Mode:     mode,
		Action:   action,
		Disabled: !c.Enabled,
	}, nil
}
