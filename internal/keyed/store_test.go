package keyed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k8s-translator/internal/path"
)

func TestSetGet(t *testing.T) {
	s := NewStore[string]()
	s.Set(path.Path{"address", "public"}, "ext")
	s.Set(path.Path{"address", "private"}, "int")

	v, ok := s.Get(path.Path{"address", "public"})
	require.True(t, ok)
	assert.Equal(t, "ext", v)

	_, ok = s.Get(path.Path{"address"})
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestOverwriteKeepsIdentifier(t *testing.T) {
	s := NewStore[int]()
	first := s.Set(path.Path{"privileged"}, 1)
	second := s.Set(path.Path{"privileged"}, 2)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Len())

	v, _ := s.Get(path.Path{"privileged"})
	assert.Equal(t, 2, v)
}

func TestKeyForRecoversKey(t *testing.T) {
	s := NewStore[bool]()
	key := path.Path{"status", "addresses", 0}
	id := s.Set(key, true)

	got, ok := s.KeyFor(id)
	require.True(t, ok)
	assert.True(t, key.Equal(got))

	// The returned key is a copy.
	got[0] = "spec"
	again, _ := s.KeyFor(id)
	assert.Equal(t, "status", again[0])

	_, ok = s.KeyFor(ID("missing"))
	assert.False(t, ok)
}

func TestSetCopiesKey(t *testing.T) {
	s := NewStore[int]()
	key := path.Path{"a", "b"}
	s.Set(key, 1)
	key[1] = "c"

	assert.True(t, s.Has(path.Path{"a", "b"}))
	assert.False(t, s.Has(path.Path{"a", "c"}))
}

func TestEntriesSnapshot(t *testing.T) {
	s := NewStore[int]()
	s.Set(path.Path{"b"}, 2)
	s.Set(path.Path{"a"}, 1)

	entries := s.Entries()

	// Writes after the snapshot are not visible to it.
	s.Set(path.Path{"c"}, 3)

	got := map[string]int{}
	for k, v := range entries {
		got[k.String()] = v
	}

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)

	for k := range s.Entries() {
		k[0] = "mutated"
	}

	assert.True(t, s.Has(path.Path{"a"}))
}

func TestEntriesEarlyStop(t *testing.T) {
	s := NewStore[int]()
	for _, k := range []string{"a", "b", "c"} {
		s.Set(path.Path{k}, 0)
	}

	n := 0
	for range s.Entries() {
		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestIndexAndNameKeysAreDistinct(t *testing.T) {
	s := NewStore[string]()
	s.Set(path.Path{"ports", 0}, "index")
	s.Set(path.Path{"ports", "0"}, "name")

	assert.Equal(t, 2, s.Len())

	v, _ := s.Get(path.Path{"ports", 0})
	assert.Equal(t, "index", v)
}
