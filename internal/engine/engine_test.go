package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/detect"
	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/mapping"
	"axis-mapper/internal/pattern"
	"axis-mapper/internal/policy"
	"axis-mapper/internal/schema"
)

func grid(start, stop float64, n int) []float64 {
	return axis.RangeDef{Start: start, Stop: stop, Count: n}.Expand()
}

func taDataset() *axis.Dataset {
	return axis.NewDataset(
		axis.Axis{Name: "time", Values: grid(0, 11, 12), Attrs: map[string]string{axis.AttrAxis: "T"}},
		axis.Axis{Name: "lev", Values: grid(100000, 100, 19)},
		axis.Axis{Name: "nav_lat", Values: grid(-89, 89, 90)},
		axis.Axis{Name: "x", Values: grid(0, 358, 180)},
	)
}

func TestNew_Defaults(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.Same(t, pattern.Default(), e.Registry())
}

func TestNew_BadPatterns(t *testing.T) {
	_, err := New(WithPatterns(pattern.Table{Entries: []pattern.Entry{
		{Category: "latitude", Names: []string{"(unclosed"}},
	}}))
	require.Error(t, err)

	var cerr *pattern.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "latitude", cerr.Category)
}

func TestNew_ExtraPatterns(t *testing.T) {
	e, err := New(WithPatterns(pattern.Table{Entries: []pattern.Entry{
		{Category: "latitude", Names: []string{`^gphi$`}},
	}}))
	require.NoError(t, err)

	ds := axis.NewDataset(axis.Axis{Name: "gphi", Values: []float64{1, 2}})
	res := e.Map(ds, schema.New("lat"), mapping.Options{})

	assert.Equal(t, mapping.Mapping{"gphi": "lat"}, res.Mapping)
}

func TestNew_MinValueCardinality(t *testing.T) {
	a := &axis.Axis{Name: "band", Values: []float64{-60, -30, 0, 30, 60}}

	def, err := New()
	require.NoError(t, err)
	assert.Equal(t, axis.Unknown, def.Classify(a).Category)

	low, err := New(WithMinValueCardinality(3))
	require.NoError(t, err)
	got := low.Classify(a)
	assert.Equal(t, axis.Latitude, got.Category)
	assert.Equal(t, detect.SignalValueRange, got.Signal)
}

func TestProcess(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	ds := taDataset()
	sch := schema.New("longitude", "latitude", "plev19", "time")

	out, err := e.Process(ds, sch, Request{Mode: mapping.ModeStrict, Action: policy.ActionError})
	require.NoError(t, err)

	want := mapping.Mapping{"time": "time", "lev": "plev19", "nav_lat": "latitude", "x": "longitude"}
	if diff := cmp.Diff(want, out.Applied); diff != "" {
		t.Errorf("applied mapping mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, out.Report.Valid)
	assert.Equal(t, []string{"time", "plev19", "latitude", "longitude"}, out.Dataset.Names())
	assert.Equal(t, []string{"time", "lev", "nav_lat", "x"}, ds.Names())
}

func TestProcess_Disabled(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	ds := taDataset()
	out, err := e.Process(ds, schema.New("lat"), Request{Disabled: true})
	require.NoError(t, err)

	assert.True(t, out.Skipped)
	assert.Same(t, ds, out.Dataset)
	assert.Nil(t, out.Result)
}

func TestProcess_ErrorPolicy(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	out, err := e.Process(taDataset(), schema.New("longitude", "latitude", "plev8", "time"),
		Request{Mode: mapping.ModeStrict, Action: policy.ActionError})

	var verr *policy.ViolationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"missing target dimensions in mapping: [plev8]"}, verr.Problems)
	assert.Nil(t, out.Dataset)
	assert.Equal(t, []string{"lev"}, out.Result.UnmappedSources)
	assert.Len(t, out.Result.Diagnostics.ByCode(diagnostic.CodeValidationFailed), 1)
}

func TestProcess_FixPolicyRecordsRepairs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	e, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)

	out, err := e.Process(taDataset(), schema.New("longitude", "latitude", "plev19", "time"), Request{
		Options: mapping.Options{
			Overrides:       mapping.Override{"nav_lat": "latitude", "x": "latitude"},
			AllowDuplicates: true,
		},
		Action: policy.ActionFix,
	})
	require.NoError(t, err)

	assert.Equal(t, mapping.Mapping{"time": "time", "lev": "plev19", "nav_lat": "latitude"}, out.Applied)
	assert.Equal(t, []string{"time", "plev19", "latitude", "x"}, out.Dataset.Names())

	require.Len(t, out.Result.Diagnostics.Infos, 1)
	repair := out.Result.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeDuplicateTarget, repair.Code)
	assert.Equal(t, "x", repair.Source)
	assert.Equal(t, "latitude", repair.Target)

	assert.Equal(t, 1, logs.FilterMessage("policy repaired mapping").Len())
}

func TestProcess_WarnPolicyLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	e, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)

	out, err := e.Process(taDataset(), schema.New("longitude", "latitude", "plev8", "time"),
		Request{Mode: mapping.ModeStrict, Action: policy.ActionWarn})
	require.NoError(t, err)

	assert.Equal(t, []string{"time", "lev", "latitude", "longitude"}, out.Dataset.Names())
	assert.Equal(t, 1, logs.Len())
}

func TestProcess_Concurrent(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	sch := schema.New("longitude", "latitude", "plev19", "time")
	want := []string{"time", "plev19", "latitude", "longitude"}

	var g errgroup.Group

	for i := range 32 {
		g.Go(func() error {
			out, err := e.Process(taDataset(), sch, Request{Mode: mapping.ModeStrict, Action: policy.ActionError})
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}

			if diff := cmp.Diff(want, out.Dataset.Names()); diff != "" {
				return fmt.Errorf("worker %d: names mismatch (-want +got):\n%s", i, diff)
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}
