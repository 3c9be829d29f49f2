package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k8s-translator/internal/path"
)

func TestNewTable(t *testing.T) {
	def := &TableDef{
		Name: "pod",
		Fields: []FieldMapping{
			{Key: KeyRef{path.Path{"privileged"}}, Paths: PathArray{{"containers", 0, "privileged"}}},
			{Key: KeyRef{path.Path{"image"}}, Paths: PathArray{{"containers", 0, "image"}}},
			// Redefinition replaces the first entry.
			{Key: KeyRef{path.Path{"privileged"}}, Paths: PathArray{{"containers", 0, "securityContext", "privileged"}}},
		},
	}

	table, err := NewTable(def)
	require.NoError(t, err)

	assert.Equal(t, "pod", table.Name())
	assert.Equal(t, DirectionBoth, table.Direction())
	assert.Equal(t, 2, table.Len())

	paths, ok := table.Paths(path.Path{"privileged"})
	require.True(t, ok)
	assert.Equal(t, []path.Path{{"containers", 0, "securityContext", "privileged"}}, paths)

	_, ok = table.Paths(path.Path{"missing"})
	assert.False(t, ok)
}

func TestTableIsImmutable(t *testing.T) {
	def := &TableDef{
		Name:   "rc",
		Fields: []FieldMapping{{Key: KeyRef{path.Path{"count"}}, Paths: PathArray{{"spec", "replicas"}}}},
	}

	table, err := NewTable(def)
	require.NoError(t, err)

	// Changing the definition after construction has no effect.
	def.Fields[0].Paths[0][1] = "changed"

	for key, paths := range table.Entries() {
		assert.Equal(t, path.Path{"count"}, key)
		assert.Equal(t, []path.Path{{"spec", "replicas"}}, paths)

		// Neither does changing what iteration hands out.
		paths[0][0] = "mutated"
		key[0] = "mutated"
	}

	paths, ok := table.Paths(path.Path{"count"})
	require.True(t, ok)
	assert.Equal(t, []path.Path{{"spec", "replicas"}}, paths)
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name string
		def  *TableDef
	}{
		{name: "nil", def: nil},
		{name: "bad direction", def: &TableDef{Name: "x", Direction: "sideways"}},
		{name: "empty key", def: &TableDef{Name: "x", Fields: []FieldMapping{{Paths: PathArray{{"a"}}}}}},
		{name: "index key", def: &TableDef{Name: "x", Fields: []FieldMapping{{Key: KeyRef{path.Path{0}}, Paths: PathArray{{"a"}}}}}},
		{name: "bad key segment", def: &TableDef{Name: "x", Fields: []FieldMapping{{Key: KeyRef{path.Path{1.5}}, Paths: PathArray{{"a"}}}}}},
		{name: "index path", def: &TableDef{Name: "x", Fields: []FieldMapping{{Key: KeyRef{path.Path{"a"}}, Paths: PathArray{{0, "a"}}}}}},
		{name: "empty path", def: &TableDef{Name: "x", Fields: []FieldMapping{{Key: KeyRef{path.Path{"a"}}, Paths: PathArray{{}}}}}},
		{name: "bad path segment", def: &TableDef{Name: "x", Fields: []FieldMapping{{Key: KeyRef{path.Path{"a"}}, Paths: PathArray{{"a", true}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.def)
			assert.Error(t, err)
		})
	}
}

func TestBuildTables(t *testing.T) {
	mf := &MappingFile{Tables: []TableDef{
		{Name: "pod", Fields: []FieldMapping{{Key: KeyRef{path.Path{"image"}}, Paths: PathArray{{"containers", 0, "image"}}}}},
		{Name: "node", Direction: DirectionFrom},
	}}

	tables, err := BuildTables(mf)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, 1, tables["pod"].Len())
	assert.Equal(t, DirectionFrom, tables["node"].Direction())

	mf.Tables = append(mf.Tables, TableDef{Name: "pod"})
	_, err = BuildTables(mf)
	assert.ErrorContains(t, err, "duplicate table")
}
