package axis

import "time"

// DatasetFile is the YAML description of a dataset's coordinate axes.
//
//	axes:
//	  - name: latitude
//	    attrs: {standard_name: latitude, axis: Y}
//	    range: {start: -89.5, stop: 89.5, count: 180}
//	  - name: lev
//	    values: [100000, 85000, 70000, 50000, 25000, 10000, 5000, 1000]
//	  - name: time
//	    times: [2000-01-01T00:00:00Z, 2000-02-01T00:00:00Z]
type DatasetFile struct {
	Axes []AxisDef `yaml:"axes"`
}

// AxisDef describes a single axis. Values, Range and Times are mutually exclusive.
type AxisDef struct {
	Name   string            `yaml:"name"`
	Attrs  map[string]string `yaml:"attrs,omitempty"`
	Values []float64         `yaml:"values,omitempty"`
	Range  *RangeDef         `yaml:"range,omitempty"`
	Times  []time.Time       `yaml:"times,omitempty"`
}

// RangeDef generates Count evenly spaced values from Start to Stop inclusive.
type RangeDef struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Count int     `yaml:"count"`
}

// Expand materializes the range into a value slice.
func (r RangeDef) Expand() []float64 {
	if r.Count <= 0 {
		return nil
	}

	if r.Count == 1 {
		return []float64{r.Start}
	}

	out := make([]float64, r.Count)
	step := (r.Stop - r.Start) / float64(r.Count-1)

	for i := range out {
		out[i] = r.Start + step*float64(i)
	}

	out[len(out)-1] = r.Stop

	return out
}
