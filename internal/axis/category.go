package axis

import "strings"

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is the physical meaning of an axis, independent of its name.
type Category int

const (
	Unknown    Category = iota // unknown
	Latitude                   // latitude
	Longitude                  // longitude
	Time                       // time
	Pressure                   // pressure
	Depth                      // depth
	Height                     // height
	ModelLevel                 // model_level

	// CategoryTotal is the number of declared categories, Unknown included.
	CategoryTotal = int(iota)
)

// Known reports whether c is a classified (non-Unknown) category.
func (c Category) Known() bool {
	return c > Unknown && int(c) < CategoryTotal
}

// ParseCategory converts a category name ("latitude", "model_level", ...)
// into its Category. Matching is case-insensitive and accepts "-" or " "
// in place of "_". The second result is false for unrecognized names.
func ParseCategory(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	for i := 1; i < CategoryTotal; i++ {
		c := Category(i)
		if c.String() == norm {
			return c, true
		}
	}

	return Unknown, false
}

// Categories returns all known categories in declaration order.
func Categories() []Category {
	out := make([]Category, 0, CategoryTotal-1)
	for i := 1; i < CategoryTotal; i++ {
		out = append(out, Category(i))
	}

	return out
}
