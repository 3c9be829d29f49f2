// Command k8s-translator converts application and host descriptors to
// Kubernetes objects and back.
//
// Usage:
//
//	k8s-translator -kind pod -direction to -in app.yaml
//	k8s-translator -kind rc -direction from -format yaml < rc.json
//	k8s-translator -validate -mapping tables.yaml
//	k8s-translator -write-tables tables.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"k8s-translator/internal/config"
	"k8s-translator/internal/logging"
	"k8s-translator/translator"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "k8s-translator: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	configPath  string
	kind        string
	direction   string
	in          string
	out         string
	format      string
	mapping     string
	logLevel    string
	validate    bool
	dump        bool
	writeTables string
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags

	fs := flag.NewFlagSet("k8s-translator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.StringVar(&f.kind, "kind", "pod", "object kind: pod|rc|node")
	fs.StringVar(&f.direction, "direction", "to", "to Kubernetes (to) or back to a descriptor (from)")
	fs.StringVar(&f.in, "in", "-", "input document, JSON or YAML (- for stdin)")
	fs.StringVar(&f.out, "out", "-", "output path (- for stdout)")
	fs.StringVar(&f.format, "format", "", "output format: json|yaml (overrides config)")
	fs.StringVar(&f.mapping, "mapping", "", "mapping tables YAML (overrides config and embedded tables)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (overrides config)")
	fs.BoolVar(&f.validate, "validate", false, "validate the mapping tables and print diagnostics")
	fs.BoolVar(&f.dump, "dump", false, "print a Go dump of the result instead of encoding it")
	fs.StringVar(&f.writeTables, "write-tables", "", "write the embedded mapping tables to this path")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}

	return f, nil
}

func loadConfig(f cliFlags) (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		var err error

		cfg, err = config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if f.format != "" {
		cfg.OutputFormat = f.format
	}

	if f.mapping != "" {
		cfg.MappingFile = f.mapping
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	logCfg := cfg.Logging()
	logging.ApplyEnv(&logCfg)
	logger := logging.New(stderr, logCfg)

	switch {
	case f.writeTables != "":
		return writeTables(f.writeTables)
	case f.validate:
		return validate(cfg.MappingFile, stdout)
	}

	kind, err := translator.ParseKind(f.kind)
	if err != nil {
		return err
	}

	direction, err := translator.ParseDirection(f.direction)
	if err != nil {
		return err
	}

	opts := []translator.Option{translator.WithLogger(logger)}
	if cfg.MappingFile != "" {
		opts = append(opts, translator.WithMappingFile(cfg.MappingFile))
	}

	tr, err := translator.New(opts...)
	if err != nil {
		return err
	}

	doc, err := readDocument(f.in, stdin)
	if err != nil {
		return err
	}

	logger.Debug().Stringer("kind", kind).Stringer("direction", direction).Str("in", f.in).Msg("translating")

	out, err := tr.Translate(ctx, kind, direction, doc)
	if err != nil {
		return err
	}

	return writeOutput(f.out, stdout, func(w io.Writer) error {
		if f.dump {
			return dump(w, out)
		}

		return encodeDocument(w, out, cfg.OutputFormat, cfg.Indent)
	})
}

func writeOutput(target string, stdout io.Writer, write func(io.Writer) error) error {
	if target == "" || target == "-" {
		return write(stdout)
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
