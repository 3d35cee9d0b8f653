package axis

import (
	"slices"
	"strings"
	"time"
)

// Attribute keys read by the classifier.
const (
	AttrStandardName = "standard_name"
	AttrAxis         = "axis"
	AttrUnits        = "units"
)

// Axis is a named coordinate dimension of a dataset.
// Exactly one of Values or Times is expected to be populated.
type Axis struct {
	Name   string
	Values []float64
	Times  []time.Time
	Attrs  map[string]string
}

// Len returns the cardinality of the axis.
func (a *Axis) Len() int {
	if a == nil {
		return 0
	}

	if len(a.Times) > 0 {
		return len(a.Times)
	}

	return len(a.Values)
}

// IsTemporal reports whether the axis carries time values.
func (a *Axis) IsTemporal() bool {
	return a != nil && len(a.Times) > 0
}

// Attr returns the attribute value for key, or "" if absent.
func (a *Axis) Attr(key string) string {
	if a == nil || a.Attrs == nil {
		return ""
	}

	return a.Attrs[key]
}

// StandardName returns the normalized (trimmed, lower-case) standard_name attribute.
func (a *Axis) StandardName() string {
	return strings.ToLower(strings.TrimSpace(a.Attr(AttrStandardName)))
}

// Code returns the normalized (trimmed, upper-case) axis attribute.
func (a *Axis) Code() string {
	return strings.ToUpper(strings.TrimSpace(a.Attr(AttrAxis)))
}

// Relabel returns a copy of the axis under a new name.
// Values and attributes are shared with the receiver; both are treated as read-only.
func (a Axis) Relabel(name string) Axis {
	a.Name = name
	return a
}

// Dataset is an ordered collection of uniquely named axes.
type Dataset struct {
	Axes []Axis
}

// NewDataset builds a dataset from the given axes, preserving their order.
func NewDataset(axes ...Axis) *Dataset {
	return &Dataset{Axes: slices.Clone(axes)}
}

// Len returns the number of axes.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Axes)
}

// Names returns the axis names in dataset order.
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}

	names := make([]string, len(d.Axes))
	for i := range d.Axes {
		names[i] = d.Axes[i].Name
	}

	return names
}

// Lookup returns the axis with the given name.
func (d *Dataset) Lookup(name string) (*Axis, bool) {
	if d == nil {
		return nil, false
	}

	for i := range d.Axes {
		if d.Axes[i].Name == name {
			return &d.Axes[i], true
		}
	}

	return nil, false
}

// Has reports whether the dataset contains an axis with the given name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}
