// Package mapping builds, validates, and applies source-to-target axis
// name mappings.
//
// # Building
//
// Builder.Build runs three phases, in order and exactly once:
//  1. Overrides: caller-supplied pairs are committed first (sources in
//     sorted order). Pairs naming an axis absent from the dataset are
//     dropped with a diagnostic.
//  2. Auto-detection: each remaining axis, in dataset order, is classified
//     and resolved against the schema names no earlier pair has taken.
//  3. Residual audit: schema names still untaken are reported.
//
// Build never fails. Everything that could not be mapped is reported in the
// Result and its diagnostics; the caller decides what is fatal.
//
// # Validating
//
// Validate checks a Mapping against a schema in strict mode (target set
// must equal the schema) or flexible mode (only counts are compared, as a
// warning). Duplicate targets are an error in both modes.
//
// # Renaming
//
// Apply relabels the axes of a dataset. Order, values and attributes are
// preserved; identity entries are no-ops.
//
// # Override files
//
// Overrides can be pinned in YAML, so that a reviewed auto-mapping becomes
// deterministic on the next run:
//
//	version: "1"
//	dimension_mapping:
//	  lev: plev19
//	  nav_lat: lat
package mapping
