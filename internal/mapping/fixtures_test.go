package mapping

import (
	"time"

	"axis-mapper/internal/axis"
)

func linspace(start, stop float64, n int) []float64 {
	return axis.RangeDef{Start: start, Stop: stop, Count: n}.Expand()
}

func monthly(n int) []time.Time {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)

	for i := range out {
		out[i] = base.AddDate(0, i, 0)
	}

	return out
}

// climateDataset is the canonical four-axis dataset used across tests.
func climateDataset() *axis.Dataset {
	return axis.NewDataset(
		axis.Axis{Name: "time", Times: monthly(10)},
		axis.Axis{Name: "latitude", Values: linspace(-89.5, 89.5, 180)},
		axis.Axis{Name: "longitude", Values: linspace(0.5, 359.5, 360)},
		axis.Axis{Name: "lev", Values: []float64{100000, 85000, 70000, 50000, 25000, 10000, 5000, 1000}},
	)
}
