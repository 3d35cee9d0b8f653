package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())

	d.AddInfo("note", "first", "", "")
	d.AddWarning(CodeUnmappedSource, "no target", "ncells", "")
	d.AddError(CodeDuplicateTarget, "taken twice", "b", "lat")
	d.Add(Diagnostic{Severity: SeverityWarning, Code: CodeUnmappedTarget, Message: "no source", Target: "plev19"})

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.Infos, 1)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)

	assert.Len(t, d.ByCode(CodeUnmappedTarget), 1)
	assert.Empty(t, d.ByCode("nope"))
	assert.Equal(t, "b -> lat: [duplicate_target] taken twice", d.Errors[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("e1", "x", "", "")
	b.AddError("e2", "y", "", "")
	b.AddWarning("w1", "z", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "source and target",
			d:    Diagnostic{Code: "c", Message: "m", Source: "lev", Target: "plev19"},
			want: "lev -> plev19: [c] m",
		},
		{
			name: "source only",
			d:    Diagnostic{Message: "m", Source: "lev"},
			want: "lev: m",
		},
		{
			name: "target only with suggestions",
			d:    Diagnostic{Code: "c", Message: "m", Target: "plev18", Suggestions: []string{"plev19", "plev8"}},
			want: "-> plev18: [c] m (did you mean plev19, plev8?)",
		},
		{
			name: "bare",
			d:    Diagnostic{Message: "m"},
			want: "m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
