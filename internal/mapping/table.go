package mapping

import (
	"errors"
	"fmt"
	"iter"

	"k8s-translator/internal/common"
	"k8s-translator/internal/keyed"
	"k8s-translator/internal/path"
)

// Table is an immutable mapping from descriptor keys to foreign paths.
// It is safe for concurrent use.
type Table struct {
	name      string
	direction Direction
	store     *keyed.Store[[]path.Path]
}

// NewTable builds a table from a definition. Later fields with an equal key
// replace earlier ones.
func NewTable(def *TableDef) (*Table, error) {
	if def == nil {
		return nil, fmt.Errorf("table definition is nil")
	}

	direction := def.Direction
	if direction == "" {
		direction = DirectionBoth
	}

	if !direction.IsValid() {
		return nil, fmt.Errorf("table %q: invalid direction %q", def.Name, def.Direction)
	}

	store := keyed.NewStore[[]path.Path]()

	for i := range def.Fields {
		fm := &def.Fields[i]

		if fm.Key.IsEmpty() {
			return nil, fmt.Errorf("table %q: field %d has an empty key", def.Name, i)
		}

		if err := fm.Key.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: key %q: %w", def.Name, fm.Key.String(), err)
		}

		if err := validateRooted(fm.Key.Path); err != nil {
			return nil, fmt.Errorf("table %q: key: %w", def.Name, err)
		}

		paths := make([]path.Path, 0, len(fm.Paths))

		for _, p := range fm.Paths {
			if err := validateRooted(p); err != nil {
				return nil, fmt.Errorf("table %q: key %q: %w", def.Name, fm.Key.String(), err)
			}

			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("table %q: key %q: path %q: %w", def.Name, fm.Key.String(), p.String(), err)
			}

			paths = append(paths, p.Clone())
		}

		store.Set(fm.Key.Path, paths)
	}

	return &Table{name: def.Name, direction: direction, store: store}, nil
}

// BuildTables builds every table in the file, keyed by name.
func BuildTables(mf *MappingFile) (map[string]*Table, error) {
	tables := make(map[string]*Table, len(mf.Tables))

	for i := range mf.Tables {
		def := &mf.Tables[i]

		if _, ok := tables[def.Name]; ok {
			return nil, fmt.Errorf("duplicate table %q", def.Name)
		}

		t, err := NewTable(def)
		if err != nil {
			return nil, err
		}

		tables[def.Name] = t
	}

	return tables, nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Direction returns the directions the table supports.
func (t *Table) Direction() Direction {
	return t.direction
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return t.store.Len()
}

// Paths returns a copy of the paths mapped for key.
func (t *Table) Paths(key path.Path) ([]path.Path, bool) {
	paths, ok := t.store.Get(key)
	if !ok {
		return nil, false
	}

	return clonePaths(paths), true
}

// Entries iterates over every (key, paths) pair. Keys and paths are copies.
func (t *Table) Entries() iter.Seq2[path.Path, []path.Path] {
	return func(yield func(path.Path, []path.Path) bool) {
		for key, paths := range t.store.Entries() {
			if !yield(key, clonePaths(paths)) {
				return
			}
		}
	}
}

// validateRooted checks that p selects a field of the document root.
func validateRooted(p path.Path) error {
	first, ok := common.First(p)
	if !ok {
		return errors.New("empty path")
	}

	if _, isIndex := path.Index(first); isIndex {
		return fmt.Errorf("path %q must start with a field name", p.String())
	}

	return nil
}

func clonePaths(paths []path.Path) []path.Path {
	out := make([]path.Path, len(paths))
	for i, p := range paths {
		out[i] = p.Clone()
	}

	return out
}
