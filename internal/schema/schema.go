// Package schema models the destination side of a mapping: the ordered
// dimension names a data standard requires for one variable.
package schema

import (
	"slices"
	"strings"
)

// Schema is an ordered list of destination axis names.
// Some names encode a cardinality through a numeric suffix ("plev19");
// interpreting them is up to the pattern registry.
type Schema struct {
	names []string
}

// New creates a schema from names, preserving order. Blank names are dropped.
func New(names ...string) *Schema {
	s := &Schema{names: make([]string, 0, len(names))}

	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s.names = append(s.names, n)
		}
	}

	return s
}

// FromList parses a comma- or space-separated list ("time, lat lon").
func FromList(list string) *Schema {
	return New(strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})...)
}

// Names returns a copy of the names in schema order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.names)
}

// Len returns the number of declared names.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	return len(s.names)
}

// Contains reports whether the schema declares the name exactly.
func (s *Schema) Contains(name string) bool {
	return s != nil && slices.Contains(s.names, name)
}

// Set returns the declared names as a set.
func (s *Schema) Set() map[string]struct{} {
	set := make(map[string]struct{}, s.Len())
	if s == nil {
		return set
	}

	for _, n := range s.names {
		set[n] = struct{}{}
	}

	return set
}

// String returns the names joined with ", ".
func (s *Schema) String() string {
	return strings.Join(s.Names(), ", ")
}
