// Package match resolves a classified axis to a destination name and
// proposes close names for diagnostics.
//
// Key functions:
//   - Resolver.Resolve: picks the target for (category, cardinality, candidates)
//   - Suggest: ranks destination names by normalized Levenshtein similarity
//
// Resolution rule: among the schema names belonging to the category, a name
// whose encoded cardinality equals the axis cardinality wins, even over a
// generic name declared earlier; otherwise the first generic name wins.
// Equal encoded cardinalities resolve to the first in schema order.
package match
