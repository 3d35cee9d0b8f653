// Package axis provides the read-only data model of the mapping engine:
// named coordinate axes with their values and attributes, the dataset that
// groups them, and the semantic categories an axis can be classified into.
//
// Key types:
//   - Axis: name, numeric or temporal values, string attributes
//   - Dataset: ordered, uniquely named axes
//   - Category: latitude, longitude, time, pressure, depth, height, model_level
//
// Datasets can be described in YAML and loaded with LoadFile / Parse.
package axis
