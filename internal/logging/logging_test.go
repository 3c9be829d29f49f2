package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{raw: "debug", want: zerolog.DebugLevel, ok: true},
		{raw: " WARNING ", want: zerolog.WarnLevel, ok: true},
		{raw: "off", want: zerolog.Disabled, ok: true},
		{raw: "", want: zerolog.InfoLevel, ok: false},
		{raw: "loud", want: zerolog.InfoLevel, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "not-a-bool")

	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnv(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.Timestamp)
	assert.False(t, cfg.NoColor)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, Config{Level: zerolog.WarnLevel, Format: FormatJSON})
	logger.Info().Msg("hidden")
	logger.Warn().Str("table", "pod").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"table":"pod"`)
	assert.NotContains(t, out, `"time"`)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, DefaultConfig(ProfileTest))
	logger.Debug().Str("field", "cpus").Msg("wrote field")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "wrote field")
	assert.Contains(t, out, "field=cpus")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Msg("visible with -v")
}
