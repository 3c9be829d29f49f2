package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("overlapping_path", "written by 2 keys", "pod", "containers.0.name")
	d.AddWarning("duplicate_key", "defined twice", "pod", "privileged")
	assert.True(t, d.IsValid())

	d.AddError("invalid_path", "bad segment", "node", "status.x")
	assert.True(t, d.HasErrors())
	assert.True(t, d.HasCode("duplicate_key"))
	assert.False(t, d.HasCode("nope"))

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, "[node] status.x: [invalid_path] bad segment", d.Error().Error())
}

func TestMerge(t *testing.T) {
	a := &Diagnostics{}
	b := Diagnostics{}
	b.AddError("x", "y", "", "")
	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Equal(t, "[x] y", a.Errors[0].String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
}

func TestSuggestionsInString(t *testing.T) {
	d := Diagnostic{Code: "unused_conversion", Message: "not used", Field: "memroy", Suggestions: []string{"memory"}}
	assert.Equal(t, "memroy: [unused_conversion] not used (did you mean memory?)", d.String())
}
