package mapping

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/detect"
	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/match"
	"axis-mapper/internal/schema"
)

func TestBuild_EndToEnd(t *testing.T) {
	b := NewBuilder(nil, nil)

	res := b.Build(climateDataset(), schema.New("time", "lat", "lon", "plev8"), Options{})

	want := Mapping{"time": "time", "latitude": "lat", "longitude": "lon", "lev": "plev8"}
	if diff := cmp.Diff(want, res.Mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(res.Decisions))
	}

	assert.Empty(t, res.UnmappedSources)
	assert.Empty(t, res.UnmappedTargets)
	assert.Empty(t, res.Duplicates)
	assert.True(t, res.Complete())
	assert.False(t, res.Diagnostics.HasErrors())
	assert.Empty(t, res.Diagnostics.All())

	require.Len(t, res.Decisions, 4)
	assert.Equal(t, Decision{
		Source:      "lev",
		Target:      "plev8",
		Origin:      OriginAuto,
		Category:    axis.Pressure,
		Signal:      detect.SignalName,
		Outcome:     match.ResolvedExact,
		Cardinality: 8,
	}, res.Decisions[3])
}

func TestBuild_CardinalitySelectsVariant(t *testing.T) {
	ds := axis.NewDataset(axis.Axis{Name: "plev", Values: linspace(1000, 100000, 19)})

	res := NewBuilder(nil, nil).Build(ds, schema.New("plev8", "plev19"), Options{})

	assert.Equal(t, Mapping{"plev": "plev19"}, res.Mapping)
	assert.Equal(t, []string{"plev8"}, res.UnmappedTargets)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeUnmappedTarget), 1)
}

func TestBuild_NoFittingCandidate(t *testing.T) {
	ds := axis.NewDataset(axis.Axis{Name: "lev", Values: linspace(1000, 100000, 12)})

	res := NewBuilder(nil, nil).Build(ds, schema.New("plev8", "plev19"), Options{})

	assert.Empty(t, res.Mapping)
	assert.Equal(t, []string{"lev"}, res.UnmappedSources)
	assert.Equal(t, []string{"plev8", "plev19"}, res.UnmappedTargets)

	diags := res.Diagnostics.ByCode(diagnostic.CodeUnmappedSource)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "classified as pressure")
	assert.Equal(t, match.Unresolved, res.Decisions[0].Outcome)
}

func TestBuild_UnknownAxis(t *testing.T) {
	ds := axis.NewDataset(
		axis.Axis{Name: "time", Values: linspace(0, 9, 10)},
		axis.Axis{Name: "ncells", Values: linspace(0, 3, 4)},
	)

	res := NewBuilder(nil, nil).Build(ds, schema.New("time", "ncell"), Options{})

	assert.Equal(t, Mapping{"time": "time"}, res.Mapping)
	assert.Equal(t, []string{"ncells"}, res.UnmappedSources)
	assert.Equal(t, []string{"ncell"}, res.UnmappedTargets)

	diags := res.Diagnostics.ByCode(diagnostic.CodeUnmappedSource)
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"ncell"}, diags[0].Suggestions)
	assert.Equal(t, axis.Unknown, res.Decisions[1].Category)
	assert.Equal(t, OriginUnmapped, res.Decisions[1].Origin)
}

func TestBuild_OverrideIsFinal(t *testing.T) {
	ds := axis.NewDataset(
		axis.Axis{Name: "time", Times: monthly(3)},
		axis.Axis{Name: "level", Values: linspace(1000, 100000, 19)},
		axis.Axis{Name: "plev", Values: linspace(1000, 100000, 19)},
	)

	res := NewBuilder(nil, nil).Build(ds, schema.New("time", "plev19", "plev"),
		Options{Overrides: Override{"level": "plev19"}})

	assert.Equal(t, "plev19", res.Mapping["level"])
	assert.Equal(t, OriginOverride, res.Decisions[1].Origin)

	// plev19 is taken, so the other pressure axis falls back to the generic name.
	assert.Equal(t, "plev", res.Mapping["plev"])
	assert.Empty(t, res.Duplicates)
	assert.True(t, res.Complete())
}

func TestBuild_OverrideMissingSource(t *testing.T) {
	res := NewBuilder(nil, nil).Build(climateDataset(), schema.New("time", "lat", "lon", "plev8"),
		Options{Overrides: Override{"latitud": "lat"}})

	diags := res.Diagnostics.ByCode(diagnostic.CodeOverrideSourceMissing)
	require.Len(t, diags, 1)
	assert.Equal(t, "latitud", diags[0].Source)
	assert.Equal(t, []string{"latitude"}, diags[0].Suggestions[:1])

	_, applied := res.Mapping["latitud"]
	assert.False(t, applied)
	assert.Equal(t, "lat", res.Mapping["latitude"], "auto-detection still maps the real axis")
}

func TestBuild_OverrideOutsideSchema(t *testing.T) {
	sch := schema.New("time", "lat", "lon", "plev8")

	res := NewBuilder(nil, nil).Build(climateDataset(), sch, Options{
		Overrides:                Override{"lev": "plev_8"},
		OverridesMustMatchSchema: true,
	})

	assert.Equal(t, "plev_8", res.Mapping["lev"], "override applies even outside the schema")
	assert.Equal(t, []string{"plev8"}, res.UnmappedTargets)

	diags := res.Diagnostics.ByCode(diagnostic.CodeOverrideNotInSchema)
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"plev8"}, diags[0].Suggestions)

	res = NewBuilder(nil, nil).Build(climateDataset(), sch, Options{Overrides: Override{"lev": "plev_8"}})
	assert.Empty(t, res.Diagnostics.ByCode(diagnostic.CodeOverrideNotInSchema), "only flagged on request")
}

func TestBuild_DuplicateOverrides(t *testing.T) {
	sch := schema.New("time", "lat", "lon", "plev8")
	overrides := Override{"latitude": "lat", "lev": "lat"}

	t.Run("dropped by default", func(t *testing.T) {
		res := NewBuilder(nil, nil).Build(climateDataset(), sch, Options{Overrides: overrides})

		assert.Equal(t, "lat", res.Mapping["latitude"])
		_, mapped := res.Mapping["lev"]
		assert.False(t, mapped)
		assert.Contains(t, res.UnmappedSources, "lev")
		assert.Empty(t, res.Duplicates)
		assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateTarget), 1)
	})

	t.Run("kept and flagged when allowed", func(t *testing.T) {
		res := NewBuilder(nil, nil).Build(climateDataset(), sch, Options{Overrides: overrides, AllowDuplicates: true})

		assert.Equal(t, "lat", res.Mapping["latitude"])
		assert.Equal(t, "lat", res.Mapping["lev"])
		assert.Equal(t, []Duplicate{{Target: "lat", Sources: []string{"latitude", "lev"}}}, res.Duplicates)
		assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateTarget), 1)
		assert.False(t, res.Complete())
	})
}

func TestBuild_IdentityOverridesAreNoOp(t *testing.T) {
	b := NewBuilder(nil, nil)
	sch := schema.New("time", "lat", "lon", "plev8")

	first := b.Build(climateDataset(), sch, Options{})

	pinned := Override{}
	for src, tgt := range first.Mapping {
		if src == tgt {
			pinned[src] = tgt
		}
	}

	require.NotEmpty(t, pinned)

	second := b.Build(climateDataset(), sch, Options{Overrides: pinned})
	assert.Equal(t, first.Mapping, second.Mapping)
	assert.Equal(t, first.UnmappedSources, second.UnmappedSources)
	assert.Equal(t, first.UnmappedTargets, second.UnmappedTargets)
}

func TestBuild_FreshResultPerCall(t *testing.T) {
	b := NewBuilder(nil, nil)
	sch := schema.New("time", "lat", "lon", "plev8")
	overrides := Override{"lev": "plev8"}

	first := b.Build(climateDataset(), sch, Options{Overrides: overrides})
	first.Mapping["lev"] = "mutated"

	second := b.Build(climateDataset(), sch, Options{Overrides: overrides})
	assert.Equal(t, "plev8", second.Mapping["lev"])
	assert.Equal(t, Override{"lev": "plev8"}, overrides, "overrides are not modified")
}

func TestBuild_EmptyInputs(t *testing.T) {
	res := NewBuilder(nil, nil).Build(axis.NewDataset(), schema.New(), Options{})
	assert.Empty(t, res.Mapping)
	assert.True(t, res.Complete())

	res = NewBuilder(nil, nil).Build(nil, nil, Options{Overrides: Override{"a": "b"}})
	assert.Empty(t, res.Mapping)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeOverrideSourceMissing), 1)
}

func TestBuild_RepeatedAxisName(t *testing.T) {
	lat := linspace(-80, 80, 11)
	ds := axis.NewDataset(
		axis.Axis{Name: "lat", Values: lat},
		axis.Axis{Name: "lat", Values: lat},
	)

	res := NewBuilder(nil, nil).Build(ds, schema.New("lat", "latitude"), Options{})

	assert.Equal(t, Mapping{"lat": "lat"}, res.Mapping)
	assert.Equal(t, []string{"lat"}, res.UnmappedSources)
	assert.Equal(t, []string{"latitude"}, res.UnmappedTargets)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeDuplicateSource), 1)

	require.Len(t, res.Decisions, 2)
	assert.Equal(t, OriginAuto, res.Decisions[0].Origin)
	assert.Equal(t, OriginUnmapped, res.Decisions[1].Origin)
	assert.False(t, res.Complete())
}
