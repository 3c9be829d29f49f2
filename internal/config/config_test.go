package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "k8s-translator.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
output_format = "YAML"
mapping_file = " tables.yaml "
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, OutputYAML, cfg.OutputFormat)
	assert.Equal(t, "tables.yaml", cfg.MappingFile)
	// Unset keys keep their defaults.
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 2, cfg.Indent)

	assert.Equal(t, zerolog.DebugLevel, cfg.Logging().Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: `log_level = `, want: "load config"},
		{name: "unknown key", body: `colour = "blue"`, want: `unknown key "colour"`},
		{name: "level", body: `log_level = "loud"`, want: "invalid log_level"},
		{name: "format", body: `log_format = "xml"`, want: "invalid log_format"},
		{name: "output", body: `output_format = "toml"`, want: "invalid output_format"},
		{name: "indent", body: `indent = 12`, want: "indent must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
