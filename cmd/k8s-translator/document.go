package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"k8s-translator/internal/config"
	"k8s-translator/translator"
)

var errNotAMapping = errors.New("input document must be a mapping")

// readDocument reads a JSON or YAML mapping. JSON is read as YAML.
func readDocument(source string, stdin io.Reader) (translator.Document, error) {
	var (
		data []byte
		err  error
	)

	if source == "" || source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	if raw == nil {
		return translator.Document{}, nil
	}

	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", errNotAMapping, raw)
	}

	return doc, nil
}

// normalize turns YAML maps with non-string keys into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}

		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}

		return t
	default:
		return v
	}
}

func encodeDocument(w io.Writer, doc translator.Document, format string, indent int) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(indent, 2))

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func dump(w io.Writer, doc translator.Document) error {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	cfg.Fdump(w, doc)

	return nil
}
