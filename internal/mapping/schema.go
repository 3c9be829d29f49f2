package mapping

import (
	"k8s-translator/internal/common"
	"k8s-translator/internal/path"
)

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Tables is the list of mapping tables, one per document pair.
	Tables []TableDef `yaml:"tables"`
}

// Direction restricts which reducers a table may be used with.
type Direction string

const (
	// DirectionBoth allows forward and reverse translation. Default.
	DirectionBoth Direction = "both"
	// DirectionTo allows forward translation only.
	DirectionTo Direction = "to"
	// DirectionFrom allows reverse translation only.
	DirectionFrom Direction = "from"
)

// IsValid returns true if the direction is a recognized value.
func (d Direction) IsValid() bool {
	return d == DirectionBoth || d == DirectionTo || d == DirectionFrom
}

// Forward reports whether the table may be used for forward translation.
func (d Direction) Forward() bool {
	return d == DirectionBoth || d == DirectionTo
}

// Reverse reports whether the table may be used for reverse translation.
func (d Direction) Reverse() bool {
	return d == DirectionBoth || d == DirectionFrom
}

// TableDef defines how one descriptor kind maps onto one foreign document kind.
type TableDef struct {
	// Name identifies the table (e.g., "pod", "node").
	Name string `yaml:"name"`

	// Description is an optional human-readable description.
	Description string `yaml:"description,omitempty"`

	// Direction limits the reducers the table is validated for.
	Direction Direction `yaml:"direction,omitempty"`

	// Fields lists the field mappings. Later entries with an equal key
	// replace earlier ones.
	Fields []FieldMapping `yaml:"fields"`
}

// FieldMapping binds one descriptor field to its foreign paths.
type FieldMapping struct {
	// Key is the descriptor field, e.g. "image" or [address, public].
	Key KeyRef `yaml:"key"`

	// Paths are the foreign document locations, in order. Reverse
	// conversions receive values in this order.
	Paths PathArray `yaml:"paths"`
}

// Cardinality represents the mapping cardinality.
type Cardinality int

const (
	CardinalityOneToOne  Cardinality = iota // 1:1 - single key to single path
	CardinalityOneToMany                    // 1:N - fan-out forward, fan-in reverse
	CardinalityEmpty                        // no paths
)

// String returns a human-readable representation of the cardinality.
func (c Cardinality) String() string {
	switch c {
	case CardinalityOneToOne:
		return "1:1"
	case CardinalityOneToMany:
		return "1:N"
	case CardinalityEmpty:
		return "1:0"
	default:
		return common.UnknownStr
	}
}

// GetCardinality returns the cardinality of this field mapping.
func (fm *FieldMapping) GetCardinality() Cardinality {
	switch {
	case common.IsEmpty(fm.Paths):
		return CardinalityEmpty
	case common.IsMultiple(fm.Paths):
		return CardinalityOneToMany
	default:
		return CardinalityOneToOne
	}
}

// KeyRef is a composite key as written in YAML.
type KeyRef struct {
	path.Path
}

// PathArray is an ordered list of paths as written in YAML.
type PathArray []path.Path

// Strings returns the dotted form of every path.
func (p PathArray) Strings() []string {
	out := make([]string, len(p))
	for i, fp := range p {
		out[i] = fp.String()
	}

	return out
}
