package mapping

import "axis-mapper/internal/axis"

// Rename is one non-identity relabeling.
type Rename struct {
	From string
	To   string
}

// RenamePlan returns the entries of m that actually change a name, sorted by source.
func RenamePlan(m Mapping) []Rename {
	var out []Rename

	for _, src := range m.Sources() {
		if !m.IsIdentity(src) {
			out = append(out, Rename{From: src, To: m[src]})
		}
	}

	return out
}

// Apply returns a new dataset with each mapped axis relabeled to its target.
// Renames are simultaneous, so swaps work. Entries whose source is absent
// and identity entries are no-ops. Axis order, values and attributes are
// preserved; the input dataset is not modified.
func Apply(ds *axis.Dataset, m Mapping) *axis.Dataset {
	out := &axis.Dataset{Axes: make([]axis.Axis, ds.Len())}

	for i := range out.Axes {
		a := ds.Axes[i]
		if tgt, ok := m[a.Name]; ok && !m.IsIdentity(a.Name) {
			a = a.Relabel(tgt)
		}

		out.Axes[i] = a
	}

	return out
}
