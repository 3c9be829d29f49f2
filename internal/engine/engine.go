// Package engine implements the two table-driven reducers that translate
// documents: ConvertTo writes descriptor fields into a foreign document and
// ConvertFrom reads them back.
//
// Both reducers fold over every table entry, starting from a copy of the
// caller's initial document. Absence is never an error: a field whose source
// value is missing, or whose conversion yields nil, is left out of the
// result. A conversion that fails on a present value aborts the call with a
// *conversion.ConversionError.
//
// Entries are processed in table order. When two entries write the same
// leaf, the later one wins; maps are merged key by key.
package engine

import (
	"iter"

	"github.com/rs/zerolog"

	"k8s-translator/internal/conversion"
	"k8s-translator/internal/document"
	"k8s-translator/internal/path"
)

// Table is the read side of a mapping table.
type Table interface {
	Name() string
	Entries() iter.Seq2[path.Path, []path.Path]
}

// Option configures a conversion call.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger sets the logger that receives per-field debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ConvertTo translates source into the foreign document described by table.
//
// For every (key, paths) entry the value at key is read from source. When it
// is present, the key's forward conversion runs once per destination path
// and each result is merged into the output at that path.
func ConvertTo(
	table Table,
	conversions *conversion.Registry,
	source, initial document.Document,
	opts ...Option,
) (document.Document, error) {
	cfg := newConfig(opts)
	log := cfg.logger.With().Str("table", table.Name()).Str("direction", conversion.DirectionTo.String()).Logger()
	out := document.CloneDocument(initial)

	for key, paths := range table.Entries() {
		value, ok := document.Get(source, key)
		if !ok {
			log.Debug().Stringer("field", key).Msg("skip absent field")
			continue
		}

		fn := conversions.Forward(key)
		wrote := 0

		// Each result is merged along its own path so that sequences
		// addressed by index merge element-wise with what is already there.
		for _, dst := range paths {
			converted, err := fn(document.Clone(value), dst.Clone())
			if err != nil {
				return nil, &conversion.ConversionError{
					Direction: conversion.DirectionTo,
					Field:     key,
					Path:      dst,
					Cause:     err,
				}
			}

			if converted == nil {
				log.Debug().Stringer("field", key).Stringer("path", dst).Msg("skip empty conversion")
				continue
			}

			out = document.MergeInto(out, dst, converted)
			wrote++
		}

		if wrote == 0 {
			continue
		}

		log.Debug().Stringer("field", key).Int("paths", wrote).Msg("wrote field")
	}

	return out, nil
}

// ConvertFrom translates the foreign document source back using table.
//
// For every (key, paths) entry the values at all paths are read, in order,
// and passed together to the key's reverse conversion. A non-nil result is
// set at key in the output.
func ConvertFrom(
	table Table,
	conversions *conversion.Registry,
	source, initial document.Document,
	opts ...Option,
) (document.Document, error) {
	cfg := newConfig(opts)
	log := cfg.logger.With().Str("table", table.Name()).Str("direction", conversion.DirectionFrom.String()).Logger()
	out := document.CloneDocument(initial)

	for key, paths := range table.Entries() {
		args := make([]conversion.Arg, len(paths))

		for i, src := range paths {
			value, _ := document.Get(source, src)
			args[i] = conversion.Arg{Value: document.Clone(value), Path: src}
		}

		result, err := conversions.Reverse(key)(args...)
		if err != nil {
			return nil, &conversion.ConversionError{
				Direction: conversion.DirectionFrom,
				Field:     key,
				Path:      key,
				Cause:     err,
			}
		}

		if result == nil {
			log.Debug().Stringer("field", key).Msg("skip absent field")
			continue
		}

		out = document.SetIn(out, key, result)

		log.Debug().Stringer("field", key).Int("paths", len(paths)).Msg("wrote field")
	}

	return out, nil
}
