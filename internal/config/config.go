// Package config loads the CLI configuration from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"k8s-translator/internal/logging"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI settings. Flags override values loaded from file.
type Config struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	// MappingFile replaces the embedded mapping tables when set.
	MappingFile string
	Indent      int
}

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	OutputFormat string `toml:"output_format"`
	MappingFile  string `toml:"mapping_file"`
	Indent       int    `toml:"indent"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    logging.FormatConsole,
		OutputFormat: OutputJSON,
		Indent:       2,
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(raw.LogFormat))
	}

	if meta.IsDefined("output_format") {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(raw.OutputFormat))
	}

	if meta.IsDefined("mapping_file") {
		cfg.MappingFile = strings.TrimSpace(raw.MappingFile)
	}

	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}

	switch c.OutputFormat {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output_format %q", c.OutputFormat)
	}

	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Indent)
	}

	return nil
}

// Logging returns the logger settings this config selects.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(c.LogLevel); ok {
		cfg.Level = lvl
	}

	cfg.Format = c.LogFormat

	return cfg
}
