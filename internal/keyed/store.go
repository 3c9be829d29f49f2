// Package keyed provides a map keyed by composite (multi-segment) keys.
//
// Keys are path.Path values. Each key is stored under its canonical encoding,
// which doubles as the entry identifier, and a reverse index recovers the
// original key from an identifier during iteration.
package keyed

import (
	"iter"
	"maps"
	"slices"

	"k8s-translator/internal/path"
)

// ID identifies a stored entry. It is the canonical encoding of the key.
type ID string

// Store maps composite keys to values of type V.
//
// A Store is not safe for concurrent writes. Once the last Set returns it may
// be read from any number of goroutines.
type Store[V any] struct {
	values map[ID]V
	keys   map[ID]path.Path
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{
		values: make(map[ID]V),
		keys:   make(map[ID]path.Path),
	}
}

// IDOf returns the identifier a key is stored under.
func IDOf(key path.Path) ID {
	return ID(key.Canonical())
}

// Set stores v under key, overwriting any value stored under an equal key.
func (s *Store[V]) Set(key path.Path, v V) ID {
	id := IDOf(key)
	s.values[id] = v
	s.keys[id] = key.Clone()

	return id
}

// Get returns the value stored under key.
func (s *Store[V]) Get(key path.Path) (V, bool) {
	v, ok := s.values[IDOf(key)]
	return v, ok
}

// Has returns true if a value is stored under key.
func (s *Store[V]) Has(key path.Path) bool {
	_, ok := s.values[IDOf(key)]
	return ok
}

// KeyFor returns a copy of the key stored under id.
func (s *Store[V]) KeyFor(id ID) (path.Path, bool) {
	k, ok := s.keys[id]
	if !ok {
		return nil, false
	}

	return k.Clone(), true
}

// Len returns the number of entries.
func (s *Store[V]) Len() int {
	return len(s.values)
}

// IDs returns the identifiers of all entries in sorted order.
func (s *Store[V]) IDs() []ID {
	return slices.Sorted(maps.Keys(s.values))
}

// Entries returns an iterator over a snapshot of the store taken at call
// time. Keys are fresh copies. Entries come in identifier order, which is
// the same for every call.
func (s *Store[V]) Entries() iter.Seq2[path.Path, V] {
	ids := s.IDs()
	keys := make([]path.Path, len(ids))
	values := make([]V, len(ids))

	for i, id := range ids {
		keys[i] = s.keys[id].Clone()
		values[i] = s.values[id]
	}

	return func(yield func(path.Path, V) bool) {
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}
