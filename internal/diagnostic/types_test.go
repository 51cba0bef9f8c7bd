package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsErr(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Err())

	d.AddWarning("unused_property", "property is never rendered", "entity staff", "properties.x")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddError("missing_id", "id resolver is required", "entity staff", "id")
	d.AddError("unknown_transform", `transform "uper" is not registered`, "entity movie", "labels[1]").
		Suggest("upper")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Err(),
		`[entity staff] id: [missing_id] id resolver is required; `+
			`[entity movie] labels[1]: [unknown_transform] transform "uper" is not registered (did you mean "upper"?)`)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "x", "", "")
	b.AddError("y", "y", "", "")
	b.AddInfo("z", "z", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
