package match

import (
	"axis-mapper/internal/axis"
	"axis-mapper/internal/common"
	"axis-mapper/internal/pattern"
)

// Candidate is a destination name that belongs to the category being resolved.
type Candidate struct {
	// Name is the destination name as declared in the schema.
	Name string
	// Position is the index of the name in the candidate list passed in.
	Position int
	// Cardinality is the encoded cardinality, valid when Encoded is true.
	Cardinality int
	Encoded     bool
}

// CandidateList is a list of candidates in schema order.
type CandidateList []Candidate

// Exact returns the first candidate encoding the given cardinality, or nil.
func (c CandidateList) Exact(cardinality int) *Candidate {
	for i := range c {
		if c[i].Encoded && c[i].Cardinality == cardinality {
			return &c[i]
		}
	}

	return nil
}

// Generic returns the first candidate without an encoded cardinality, or nil.
func (c CandidateList) Generic() *Candidate {
	for i := range c {
		if !c[i].Encoded {
			return &c[i]
		}
	}

	return nil
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	out := make([]string, len(c))
	for i := range c {
		out[i] = c[i].Name
	}

	return out
}

// Outcome describes how a resolution ended.
type Outcome int

const (
	Unresolved Outcome = iota
	ResolvedExact
	ResolvedGeneric
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Unresolved:
		return "unresolved"
	case ResolvedExact:
		return "cardinality"
	case ResolvedGeneric:
		return "generic"
	default:
		return common.UnknownStr
	}
}

// Resolution is the explained result of Resolver.Explain.
type Resolution struct {
	Target     string
	Outcome    Outcome
	Considered CandidateList
}

// Resolver maps a category and cardinality onto one destination name.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	registry *pattern.Registry
}

// NewResolver creates a Resolver. A nil registry selects pattern.Default().
func NewResolver(reg *pattern.Registry) *Resolver {
	if reg == nil {
		reg = pattern.Default()
	}

	return &Resolver{registry: reg}
}

// Members returns the names from candidates that belong to the category,
// preserving their order.
func (r *Resolver) Members(cat axis.Category, candidates []string) CandidateList {
	var out CandidateList

	for i, name := range candidates {
		if !r.registry.IsCandidate(cat, name) {
			continue
		}

		n, encoded := r.registry.Cardinality(cat, name)
		out = append(out, Candidate{
			Name:        name,
			Position:    i,
			Cardinality: n,
			Encoded:     encoded,
		})
	}

	return out
}

// Resolve selects the destination name for an axis of the given category and
// cardinality from the still-available candidates. The second result is
// false when no candidate fits.
func (r *Resolver) Resolve(cat axis.Category, cardinality int, candidates []string) (string, bool) {
	res := r.Explain(cat, cardinality, candidates)
	return res.Target, res.Outcome != Unresolved
}

// Explain is Resolve with the considered candidates and the rule that fired.
func (r *Resolver) Explain(cat axis.Category, cardinality int, candidates []string) Resolution {
	members := r.Members(cat, candidates)
	res := Resolution{Considered: members}

	if exact := members.Exact(cardinality); exact != nil {
		res.Target, res.Outcome = exact.Name, ResolvedExact
		return res
	}

	if generic := members.Generic(); generic != nil {
		res.Target, res.Outcome = generic.Name, ResolvedGeneric
	}

	return res
}
