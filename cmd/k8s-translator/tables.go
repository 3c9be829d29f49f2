package main

import (
	"fmt"
	"io"

	"k8s-translator/internal/k8s"
	"k8s-translator/internal/mapping"
)

// validate prints every diagnostic for the mapping tables and fails when any
// of them is an error.
func validate(mappingFile string, w io.Writer) error {
	var (
		mf  *mapping.MappingFile
		err error
	)

	if mappingFile != "" {
		mf, err = mapping.LoadFile(mappingFile)
	} else {
		mf, err = k8s.DefaultMapping()
	}

	if err != nil {
		return err
	}

	diags := mapping.Validate(mf, k8s.Conversions())

	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.String())
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("mapping tables are invalid: %d error(s)", len(diags.Errors))
	}

	fmt.Fprintf(w, "ok: %d tables, %d warnings\n", len(mf.Tables), len(diags.Warnings))

	return nil
}

func writeTables(path string) error {
	mf, err := k8s.DefaultMapping()
	if err != nil {
		return err
	}

	return mapping.WriteFile(mf, path)
}
