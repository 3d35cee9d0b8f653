// Package detect classifies a single axis into a semantic category.
//
// Classification is an ordered cascade of independent strategies, stopping
// at the first one that fires:
//  1. Name pattern (case-insensitive regexps from the pattern registry)
//  2. standard_name attribute synonyms
//  3. axis attribute code (X/Y/Z/T)
//  4. Value ranges, only for numeric axes longer than a minimum cardinality
//
// There is no scoring or voting across strategies. A miss is a normal
// outcome (axis.Unknown), never an error.
package detect
