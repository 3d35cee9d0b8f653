package match

import (
	"sort"
	"strings"
)

// DefaultMinSimilarity is the lowest similarity a suggestion may have.
const DefaultMinSimilarity = 0.5

// Suggest returns up to n names from pool most similar to name, best first.
// Names below DefaultMinSimilarity are left out; ties sort alphabetically.
// An exact match is kept and ranks first.
func Suggest(name string, pool []string, n int) []string {
	if n <= 0 || name == "" {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, p := range pool {
		s := Similarity(name, p)
		if s >= DefaultMinSimilarity {
			ranked = append(ranked, scored{name: p, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(n, len(ranked)))
	for i := 0; i < len(ranked) && i < n; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}

// Similarity returns 1 - distance/maxLen over normalized names, in [0, 1].
func Similarity(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)

	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Normalize lower-cases a name and strips '_', '-', '.' and spaces so that
// "Plev_19" and "plev19" compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', '.', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Levenshtein computes the edit distance between two strings, rune-wise.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}

	return row[len(ra)]
}
