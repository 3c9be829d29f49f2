// Package translator converts application and host descriptors to Kubernetes
// objects and back.
//
// A Translator is built once and is safe for concurrent use: its mapping
// tables and conversions are validated at construction and never change.
// Every call works on its own copy of the input and returns a fresh document.
//
// Fields absent from the input are absent from the output. A field whose
// value cannot be converted fails the whole call with an error that wraps a
// *conversion.ConversionError naming the field and path.
package translator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"k8s-translator/internal/document"
	"k8s-translator/internal/engine"
	"k8s-translator/internal/k8s"
	"k8s-translator/internal/mapping"
	"k8s-translator/internal/path"
)

const tracerName = "k8s-translator"

var (
	ErrUnknownKind      = errors.New("unknown kind")
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrDirectionNotAllowed is returned when a table is declared for the
	// opposite direction only.
	ErrDirectionNotAllowed = errors.New("direction not allowed by mapping table")
)

// Document is a JSON-like tree: maps, sequences and scalars.
type Document = document.Document

var templateSpecPath = path.Of("spec", "template", "spec")

// Translator translates documents using validated mapping tables.
type Translator struct {
	defs   *k8s.Definitions
	logger zerolog.Logger
	tracer trace.Tracer
}

// Option configures a Translator.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	tracer      trace.Tracer
	defs        *k8s.Definitions
	mappingFile string
}

// WithLogger sets the logger. Per-field events are logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets the tracer that records one span per translation.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithDefinitions uses already built tables and conversions.
func WithDefinitions(defs *k8s.Definitions) Option {
	return func(o *options) {
		o.defs = defs
	}
}

// WithMappingFile loads the tables from a YAML file instead of the
// embedded ones. WithDefinitions takes precedence.
func WithMappingFile(filename string) Option {
	return func(o *options) {
		o.mappingFile = filename
	}
}

// New builds a Translator. Without options it uses the embedded tables, a
// no-op logger and a no-op tracer.
func New(opts ...Option) (*Translator, error) {
	o := options{
		logger: zerolog.Nop(),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(&o)
	}

	defs := o.defs

	if defs == nil {
		var err error

		if o.mappingFile != "" {
			defs, err = k8s.LoadFile(o.mappingFile)
		} else {
			defs, err = k8s.Load()
		}

		if err != nil {
			return nil, fmt.Errorf("load definitions: %w", err)
		}
	}

	for _, d := range defs.Diagnostics().Warnings {
		o.logger.Warn().Str("code", d.Code).Str("table", d.Table).Str("field", d.Field).Msg(d.Message)
	}

	return &Translator{
		defs:   defs,
		logger: o.logger,
		tracer: o.tracer,
	}, nil
}

// Definitions returns the tables and conversions in use.
func (t *Translator) Definitions() *k8s.Definitions {
	return t.defs
}

// PodFromApplication builds a pod spec from an application descriptor.
func (t *Translator) PodFromApplication(ctx context.Context, app Document) (Document, error) {
	return t.trace(ctx, "PodFromApplication", func() (Document, error) {
		return t.podFromApplication(app)
	})
}

func (t *Translator) podFromApplication(app Document) (Document, error) {
	if err := k8s.CheckPorts(app); err != nil {
		return nil, fmt.Errorf("translate to %s: %w", k8s.TablePod, err)
	}

	return t.to(t.defs.Pod(), app, nil)
}

// ApplicationFromPod reads an application descriptor back from a pod spec.
func (t *Translator) ApplicationFromPod(ctx context.Context, pod Document) (Document, error) {
	return t.trace(ctx, "ApplicationFromPod", func() (Document, error) {
		return t.from(t.defs.Pod(), pod, nil)
	})
}

// ReplicationControllerFromApplication builds a replication controller whose
// template holds the application's pod spec.
func (t *Translator) ReplicationControllerFromApplication(ctx context.Context, app Document) (Document, error) {
	return t.trace(ctx, "ReplicationControllerFromApplication", func() (Document, error) {
		pod, err := t.podFromApplication(app)
		if err != nil {
			return nil, err
		}

		rc, err := t.to(t.defs.ReplicationController(), app, nil)
		if err != nil {
			return nil, err
		}

		base := Document{
			"apiVersion": "v1",
			"kind":       "ReplicationController",
			"spec": map[string]any{
				"template": map[string]any{"spec": pod},
			},
		}

		return document.MergeDocuments(base, rc), nil
	})
}

// ApplicationFromReplicationController reads an application descriptor back
// from a replication controller. Fields stored on the controller win over
// those read from its pod template.
func (t *Translator) ApplicationFromReplicationController(ctx context.Context, rc Document) (Document, error) {
	return t.trace(ctx, "ApplicationFromReplicationController", func() (Document, error) {
		var app Document

		if spec, ok := document.Get(rc, templateSpecPath); ok {
			if pod, isMap := spec.(map[string]any); isMap {
				var err error

				app, err = t.from(t.defs.Pod(), pod, nil)
				if err != nil {
					return nil, err
				}
			}
		}

		return t.from(t.defs.ReplicationController(), rc, app)
	})
}

// NodeFromHost builds a Kubernetes node from a host descriptor.
func (t *Translator) NodeFromHost(ctx context.Context, host Document) (Document, error) {
	return t.trace(ctx, "NodeFromHost", func() (Document, error) {
		return t.to(t.defs.Node(), host, Document{"apiVersion": "v1", "kind": "Node"})
	})
}

// HostFromNode reads a host descriptor back from a Kubernetes node.
func (t *Translator) HostFromNode(ctx context.Context, node Document) (Document, error) {
	return t.trace(ctx, "HostFromNode", func() (Document, error) {
		return t.from(t.defs.Node(), node, nil)
	})
}

// Translate dispatches to the entry point for kind and direction.
func (t *Translator) Translate(ctx context.Context, kind KindEnum, direction Direction, doc Document) (Document, error) {
	switch direction {
	case ToKubernetes:
		switch kind {
		case KindPod:
			return t.PodFromApplication(ctx, doc)
		case KindReplicationController:
			return t.ReplicationControllerFromApplication(ctx, doc)
		case KindNode:
			return t.NodeFromHost(ctx, doc)
		}
	case FromKubernetes:
		switch kind {
		case KindPod:
			return t.ApplicationFromPod(ctx, doc)
		case KindReplicationController:
			return t.ApplicationFromReplicationController(ctx, doc)
		case KindNode:
			return t.HostFromNode(ctx, doc)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDirection, direction)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func (t *Translator) to(table *mapping.Table, source, initial Document) (Document, error) {
	if !table.Direction().Forward() {
		return nil, fmt.Errorf("%w: table %q is %s only", ErrDirectionNotAllowed, table.Name(), table.Direction())
	}

	out, err := engine.ConvertTo(table, t.defs.Conversions(), source, initial, engine.WithLogger(t.logger))
	if err != nil {
		return nil, fmt.Errorf("translate to %s: %w", table.Name(), err)
	}

	return out, nil
}

func (t *Translator) from(table *mapping.Table, source, initial Document) (Document, error) {
	if !table.Direction().Reverse() {
		return nil, fmt.Errorf("%w: table %q is %s only", ErrDirectionNotAllowed, table.Name(), table.Direction())
	}

	out, err := engine.ConvertFrom(table, t.defs.Conversions(), source, initial, engine.WithLogger(t.logger))
	if err != nil {
		return nil, fmt.Errorf("translate from %s: %w", table.Name(), err)
	}

	return out, nil
}

// trace runs fn inside a span named after the entry point.
func (t *Translator) trace(ctx context.Context, op string, fn func() (Document, error)) (Document, error) {
	_, span := t.tracer.Start(ctx, "translator."+op)
	defer span.End()

	out, err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.Debug().Err(err).Str("op", op).Msg("translation failed")

		return nil, err
	}

	span.SetAttributes(attribute.Int("translator.output_fields", len(out)))
	span.SetStatus(codes.Ok, "")

	return out, nil
}
