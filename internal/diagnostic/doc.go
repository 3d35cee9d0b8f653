// Package diagnostic provides structured warnings, errors, and notes
// produced while building and validating an axis mapping.
//
// Diagnostics are facts, not actions: the engine never logs or fails on
// them. The calling layer decides, under its own policy, whether a
// diagnostic is ignored, reported, escalated, or repaired.
//
// Stable codes:
//   - override_source_missing: an override names an axis absent from the dataset
//   - override_not_in_schema: an override targets a name the schema does not declare
//   - duplicate_target: two source axes were assigned the same target
//   - unmapped_source: a source axis received no target
//   - unmapped_target: a schema name received no source
//   - missing_source: a mapping entry names an axis absent from the dataset
package diagnostic
