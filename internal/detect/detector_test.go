package detect

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/pattern"
)

func linspace(start, stop float64, n int) []float64 {
	return axis.RangeDef{Start: start, Stop: stop, Count: n}.Expand()
}

func TestDetector_Explain(t *testing.T) {
	d := New(nil)

	tests := []struct {
		name       string
		axis       *axis.Axis
		wantCat    axis.Category
		wantSignal Signal
	}{
		{
			name:       "name latitude",
			axis:       &axis.Axis{Name: "latitude"},
			wantCat:    axis.Latitude,
			wantSignal: SignalName,
		},
		{
			name:       "name lat beats attributes",
			axis:       &axis.Axis{Name: "lat", Attrs: map[string]string{"axis": "X"}},
			wantCat:    axis.Latitude,
			wantSignal: SignalName,
		},
		{
			name:       "standard name",
			axis:       &axis.Axis{Name: "ncl0", Attrs: map[string]string{"standard_name": "grid_longitude"}},
			wantCat:    axis.Longitude,
			wantSignal: SignalStandardName,
		},
		{
			name: "standard name beats axis code",
			axis: &axis.Axis{Name: "dim0", Attrs: map[string]string{
				"standard_name": "depth", "axis": "Z",
			}},
			wantCat:    axis.Depth,
			wantSignal: SignalStandardName,
		},
		{
			name:       "axis code Y",
			axis:       &axis.Axis{Name: "dim1", Attrs: map[string]string{"axis": "Y"}},
			wantCat:    axis.Latitude,
			wantSignal: SignalAxisCode,
		},
		{
			name:       "axis code lower-case t",
			axis:       &axis.Axis{Name: "dim2", Attrs: map[string]string{"axis": "t"}},
			wantCat:    axis.Time,
			wantSignal: SignalAxisCode,
		},
		{
			name:       "axis code Z resolves to pressure",
			axis:       &axis.Axis{Name: "dim3", Attrs: map[string]string{"axis": "Z"}},
			wantCat:    axis.Pressure,
			wantSignal: SignalAxisCode,
		},
		{
			name:       "values latitude",
			axis:       &axis.Axis{Name: "dim4", Values: linspace(-89.5, 89.5, 180)},
			wantCat:    axis.Latitude,
			wantSignal: SignalValueRange,
		},
		{
			name:       "values longitude 0-360",
			axis:       &axis.Axis{Name: "dim5", Values: linspace(0, 359, 360)},
			wantCat:    axis.Longitude,
			wantSignal: SignalValueRange,
		},
		{
			name:       "values longitude -180-180",
			axis:       &axis.Axis{Name: "dim6", Values: linspace(-179.5, 179.5, 360)},
			wantCat:    axis.Longitude,
			wantSignal: SignalValueRange,
		},
		{
			name:       "values pressure Pa",
			axis:       &axis.Axis{Name: "dim7", Values: linspace(1000, 100000, 19)},
			wantCat:    axis.Pressure,
			wantSignal: SignalValueRange,
		},
		{
			name:       "values pressure hPa",
			axis:       &axis.Axis{Name: "dim8", Values: linspace(400, 1000, 12)},
			wantCat:    axis.Pressure,
			wantSignal: SignalValueRange,
		},
		{
			name:       "short axis skips value heuristic",
			axis:       &axis.Axis{Name: "dim9", Values: linspace(-10, 10, 10)},
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
		{
			name:       "negative values outside every band",
			axis:       &axis.Axis{Name: "dim10", Values: linspace(-5000, -10, 50)},
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
		{
			name:       "temporal values skip value heuristic",
			axis:       &axis.Axis{Name: "dim11", Times: make([]time.Time, 20)},
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
		{
			name:       "NaN disables value heuristic",
			axis:       &axis.Axis{Name: "dim12", Values: append(linspace(-10, 10, 20), math.NaN())},
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
		{
			name:       "empty axis",
			axis:       &axis.Axis{},
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
		{
			name:       "nil axis",
			axis:       nil,
			wantCat:    axis.Unknown,
			wantSignal: SignalNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Explain(tt.axis)
			assert.Equal(t, tt.wantCat, got.Category)
			assert.Equal(t, tt.wantSignal, got.Signal)
			assert.Equal(t, tt.wantCat, d.Classify(tt.axis))
		})
	}
}

func TestDetector_KnownLatitudeSignals(t *testing.T) {
	d := New(nil)

	for _, a := range []*axis.Axis{
		{Name: "latitude"},
		{Name: "lat"},
		{Name: "Lat"},
		{Name: "anything", Attrs: map[string]string{"axis": "Y"}},
		{Name: "anything", Attrs: map[string]string{"standard_name": "latitude"}},
		{Name: "anything", Values: linspace(-90, 90, 11)},
	} {
		assert.Equal(t, axis.Latitude, d.Classify(a), a.Name)
	}
}

func TestWithMinValueCardinality(t *testing.T) {
	a := &axis.Axis{Name: "dim", Values: []float64{100000, 85000, 70000, 50000, 25000, 10000, 5000, 1000}}

	assert.Equal(t, axis.Unknown, New(nil).Classify(a))
	assert.Equal(t, axis.Pressure, New(nil, WithMinValueCardinality(4)).Classify(a))
	assert.Equal(t, axis.Pressure, New(nil, WithMinValueCardinality(-3)).Classify(a))
}

func TestDetector_CustomRegistry(t *testing.T) {
	reg := pattern.MustCompile(pattern.DefaultTable().Merge(pattern.Table{Entries: []pattern.Entry{
		{Category: "depth", Names: []string{`^deptht$`}},
	}}))

	d := New(reg)
	assert.Equal(t, axis.Depth, d.Classify(&axis.Axis{Name: "deptht"}))
	assert.Equal(t, axis.Unknown, New(nil).Classify(&axis.Axis{Name: "deptht"}))
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "name", SignalName.String())
	assert.Equal(t, "standard_name", SignalStandardName.String())
	assert.Equal(t, "axis", SignalAxisCode.String())
	assert.Equal(t, "values", SignalValueRange.String())
	assert.Equal(t, "none", SignalNone.String())
	assert.Equal(t, "unknown", Signal(99).String())
}
