package common

import "slices"

// UnknownStr is the String() value of enums outside their declared range.
const UnknownStr = "unknown"

// Dedup returns the distinct elements of s in first-seen order.
func Dedup[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// SortedCopy returns a sorted copy of s, leaving s untouched.
func SortedCopy[S ~[]E, E ~string](s S) S {
	out := slices.Clone(s)
	slices.Sort(out)

	return out
}
