// Package k8s holds the Kubernetes schema definitions: the mapping tables
// between application or host descriptors and Kubernetes objects, and the
// value conversions each field needs.
//
// The tables ship embedded in the binary and may be replaced by a YAML file
// with the same layout. Either way they are validated once, when the
// Definitions are built, and are read-only afterwards.
package k8s

import (
	_ "embed"
	"errors"
	"fmt"

	"k8s-translator/internal/conversion"
	"k8s-translator/internal/diagnostic"
	"k8s-translator/internal/mapping"
	"k8s-translator/internal/path"
)

// Table names.
const (
	TablePod                   = "pod"
	TableReplicationController = "replication-controller"
	TableNode                  = "node"
)

// ErrMissingTable is returned when a mapping file lacks a required table.
var ErrMissingTable = errors.New("missing mapping table")

//go:embed tables.yaml
var defaultTables []byte

// DefaultMapping parses the embedded tables.
func DefaultMapping() (*mapping.MappingFile, error) {
	return mapping.Parse(defaultTables)
}

// Conversions returns the forward and reverse conversions for every
// descriptor field that is not copied unchanged.
func Conversions() *conversion.Registry {
	return conversion.NewRegistry().
		RegisterReverse(path.Of("id"), conversion.Coalesce).
		RegisterForward(path.Of("command"), commandTo).
		RegisterReverse(path.Of("command"), commandFrom).
		RegisterForward(path.Of("privileged"), privilegedTo).
		RegisterForward(path.Of("respawn"), respawnTo).
		RegisterReverse(path.Of("respawn"), respawnFrom).
		RegisterForward(path.Of("network_mode"), networkModeTo).
		RegisterReverse(path.Of("network_mode"), networkModeFrom).
		RegisterForward(path.Of("env_vars"), envTo).
		RegisterReverse(path.Of("env_vars"), envFrom).
		RegisterForward(path.Of("host_port"), portTo("hostPort")).
		RegisterReverse(path.Of("host_port"), portFrom("hostPort")).
		RegisterForward(path.Of("container_port"), portTo("containerPort")).
		RegisterReverse(path.Of("container_port"), portFrom("containerPort")).
		RegisterForward(path.Of("cpus"), cpusTo).
		RegisterReverse(path.Of("cpus"), cpusFrom).
		RegisterForward(path.Of("memory"), memoryTo).
		RegisterReverse(path.Of("memory"), memoryFrom).
		RegisterForward(path.Of("volumes"), volumesTo).
		RegisterReverse(path.Of("volumes"), volumesFrom).
		RegisterForward(path.Of("tags"), tagsTo).
		RegisterReverse(path.Of("tags"), tagsFrom).
		RegisterForward(path.Of("state"), stateTo).
		RegisterReverse(path.Of("state"), stateFrom).
		RegisterForward(path.Of("address", "public"), addressTo(addressExternal)).
		RegisterReverse(path.Of("address", "public"), addressFrom).
		RegisterForward(path.Of("address", "private"), addressTo(addressInternal)).
		RegisterReverse(path.Of("address", "private"), addressFrom).
		RegisterForward(path.Of("last_sync"), timestampTo).
		RegisterReverse(path.Of("last_sync"), timestampFrom).
		RegisterForward(path.Of("start_time"), timestampTo).
		RegisterReverse(path.Of("start_time"), timestampFrom)
}

// Definitions bundles validated mapping tables with their conversions.
type Definitions struct {
	mapping     *mapping.MappingFile
	tables      map[string]*mapping.Table
	conversions *conversion.Registry
	diagnostics *diagnostic.Diagnostics
}

// Load builds Definitions from the embedded tables.
func Load() (*Definitions, error) {
	mf, err := DefaultMapping()
	if err != nil {
		return nil, err
	}

	return New(mf, Conversions())
}

// LoadFile builds Definitions from a mapping file on disk.
func LoadFile(filename string) (*Definitions, error) {
	mf, err := mapping.LoadFile(filename)
	if err != nil {
		return nil, err
	}

	return New(mf, Conversions())
}

// New validates mf against registry and builds its tables. The pod,
// replication controller and node tables must all be present.
func New(mf *mapping.MappingFile, registry *conversion.Registry) (*Definitions, error) {
	diags := mapping.Validate(mf, registry)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid mapping tables: %w", err)
	}

	tables, err := mapping.BuildTables(mf)
	if err != nil {
		return nil, err
	}

	defs := &Definitions{
		mapping:     mf,
		tables:      tables,
		conversions: registry,
		diagnostics: diags,
	}

	for _, name := range []string{TablePod, TableReplicationController, TableNode} {
		if _, ok := defs.Table(name); !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingTable, name)
		}
	}

	return defs, nil
}

// Table returns the named table.
func (d *Definitions) Table(name string) (*mapping.Table, bool) {
	t, ok := d.tables[name]
	return t, ok
}

func (d *Definitions) Pod() *mapping.Table {
	t, _ := d.Table(TablePod)
	return t
}

func (d *Definitions) ReplicationController() *mapping.Table {
	t, _ := d.Table(TableReplicationController)
	return t
}

func (d *Definitions) Node() *mapping.Table {
	t, _ := d.Table(TableNode)
	return t
}

func (d *Definitions) Conversions() *conversion.Registry {
	return d.conversions
}

// Diagnostics returns the warnings and infos found while validating.
func (d *Definitions) Diagnostics() *diagnostic.Diagnostics {
	return d.diagnostics
}

// Mapping returns the mapping file the tables were built from.
func (d *Definitions) Mapping() *mapping.MappingFile {
	return d.mapping
}
