package pattern

import "slices"

// Table is the declarative, uncompiled form of a Registry.
type Table struct {
	Entries []Entry `yaml:"entries" koanf:"entries"`
}

// Entry describes one semantic category. Several entries may name the same
// category; their lists are concatenated in declaration order.
type Entry struct {
	// Category is the category name as accepted by axis.ParseCategory.
	Category string `yaml:"category" koanf:"category"`
	// Names are regexps matched case-insensitively against axis names.
	Names []string `yaml:"names,omitempty" koanf:"names"`
	// StandardNames are standard_name attribute values (case-insensitive).
	StandardNames []string `yaml:"standard_names,omitempty" koanf:"standard_names"`
	// AxisCode is the expected single-letter axis attribute (X, Y, Z or T).
	AxisCode string `yaml:"axis,omitempty" koanf:"axis"`
	// Candidates are regexps describing destination names of this category
	// that carry no cardinality (e.g. "olevel", "time1").
	Candidates []string `yaml:"candidates,omitempty" koanf:"candidates"`
	// Cardinality are regexps with exactly one capture group holding the
	// cardinality a destination name encodes (e.g. `^plev(\d+)$`).
	Cardinality []string `yaml:"cardinality,omitempty" koanf:"cardinality"`
}

// Merge returns a new table with extra's entries appended after t's.
// Neither input is modified.
func (t Table) Merge(extra Table) Table {
	return Table{Entries: append(slices.Clone(t.Entries), extra.Entries...)}
}

// DefaultTable returns the built-in classification table.
func DefaultTable() Table {
	return Table{Entries: []Entry{
		{
			Category:      "latitude",
			Names:         []string{`^lat(itude)?(_\w+)?$`, `^y(lat)?$`, `^rlat$`, `^nav_lat$`},
			StandardNames: []string{"latitude", "grid_latitude"},
			AxisCode:      "Y",
			Candidates:    []string{`^(latitude|lat|gridlatitude)$`},
		},
		{
			Category:      "longitude",
			Names:         []string{`^lon(gitude)?(_\w+)?$`, `^x(lon)?$`, `^rlon$`, `^nav_lon$`},
			StandardNames: []string{"longitude", "grid_longitude"},
			AxisCode:      "X",
			Candidates:    []string{`^(longitude|lon|gridlongitude)$`},
		},
		{
			Category:      "pressure",
			Names:         []string{`^(p)?lev(el)?s?$`, `^plev\d*$`, `^pressure(_\w+)?$`, `^pres$`},
			StandardNames: []string{"air_pressure"},
			AxisCode:      "Z",
			Candidates:    []string{`^plev$`},
			Cardinality:   []string{`^plev(\d+)$`},
		},
		{
			Category:      "depth",
			Names:         []string{`^(o)?lev(el)?s?$`, `^depth(_\w+)?$`, `^olevel\d*$`, `^z(_\w+)?$`},
			StandardNames: []string{"depth", "ocean_depth"},
			AxisCode:      "Z",
			Candidates:    []string{`^(olevel|olevhalf|oline|depth)$`},
		},
		{
			Category:   "model_level",
			Names:      []string{`^alev(el)?s?$`, `^(model_)?level(_\w+)?$`, `^lev$`},
			AxisCode:   "Z",
			Candidates: []string{`^(alevel|alevhalf)$`},
		},
		{
			Category:      "height",
			Names:         []string{`^(alt|height)(_?\d+m?)?$`, `^z$`},
			StandardNames: []string{"height", "altitude"},
			AxisCode:      "Z",
			Candidates:    []string{`^height(\d+m)?$`},
			Cardinality:   []string{`^alt(\d+)$`},
		},
		{
			Category:      "time",
			Names:         []string{`^time\d*$`, `^t$`},
			StandardNames: []string{"time"},
			AxisCode:      "T",
			Candidates:    []string{`^time\d*$`},
		},
	}}
}
