package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k8s-translator/internal/path"
)

func TestGet(t *testing.T) {
	doc := Document{
		"metadata": map[string]any{"name": "web-1"},
		"containers": []any{
			map[string]any{"name": "web", "ports": []any{map[string]any{"hostPort": 80}}},
		},
		"empty": nil,
		"count": 3,
	}

	tests := []struct {
		name  string
		path  path.Path
		want  any
		found bool
	}{
		{name: "nested field", path: path.Path{"metadata", "name"}, want: "web-1", found: true},
		{name: "index", path: path.Path{"containers", 0, "name"}, want: "web", found: true},
		{name: "deep index", path: path.Path{"containers", 0, "ports", 0, "hostPort"}, want: 80, found: true},
		{name: "missing field", path: path.Path{"metadata", "uid"}},
		{name: "index out of range", path: path.Path{"containers", 1}},
		{name: "null leaf", path: path.Path{"empty"}},
		{name: "through null", path: path.Path{"empty", "x"}},
		{name: "name into sequence", path: path.Path{"containers", "name"}},
		{name: "index into map", path: path.Path{"metadata", 0}},
		{name: "index into scalar", path: path.Path{"count", 0}},
		{name: "field of scalar", path: path.Path{"count", "x"}},
		{name: "empty path returns root", path: path.Path{}, want: nil, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Get(doc, tt.path)
			assert.Equal(t, tt.found, ok)

			if tt.found && tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMergeCreatesIntermediates(t *testing.T) {
	got := Merge(nil, path.Path{"containers", 0, "resources", "limits", "cpu"}, "2000m")

	assert.Equal(t, map[string]any{
		"containers": []any{
			map[string]any{"resources": map[string]any{"limits": map[string]any{"cpu": "2000m"}}},
		},
	}, got)
}

func TestMergePadsSequences(t *testing.T) {
	got := Merge(map[string]any{}, path.Path{"status", "conditions", 2, "status"}, "True")

	conditions := got.(map[string]any)["status"].(map[string]any)["conditions"].([]any)
	require.Len(t, conditions, 3)
	assert.Nil(t, conditions[0])
	assert.Nil(t, conditions[1])
	assert.Equal(t, map[string]any{"status": "True"}, conditions[2])
}

func TestMergeIndexByIndex(t *testing.T) {
	target := map[string]any{"ports": []any{map[string]any{"hostPort": 80}, "keep"}}

	got := Merge(target, path.Path{"ports", 0}, map[string]any{"containerPort": 8080})

	assert.Equal(t, map[string]any{
		"ports": []any{map[string]any{"hostPort": 80, "containerPort": 8080}, "keep"},
	}, got)
}

func TestMergeReplacesScalarsAndArrays(t *testing.T) {
	target := map[string]any{"command": []any{"a", "b", "c"}, "image": "old"}

	got := Merge(target, path.Path{"command"}, []any{"x"})
	got = Merge(got, path.Path{"image"}, "new")

	assert.Equal(t, map[string]any{"command": []any{"x"}, "image": "new"}, got)
}

func TestMergeMapsRecursively(t *testing.T) {
	target := map[string]any{"metadata": map[string]any{"labels": map[string]any{"app": "web"}}}

	got := Merge(target, path.Path{"metadata"}, map[string]any{
		"labels": map[string]any{"tier": "front"},
		"name":   "web-1",
	})

	assert.Equal(t, map[string]any{"metadata": map[string]any{
		"labels": map[string]any{"app": "web", "tier": "front"},
		"name":   "web-1",
	}}, got)
}

func TestMergeReplacesWrongTypedIntermediate(t *testing.T) {
	got := Merge(map[string]any{"spec": "scalar"}, path.Path{"spec", "replicas"}, 3)
	assert.Equal(t, map[string]any{"spec": map[string]any{"replicas": 3}}, got)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	target := map[string]any{"metadata": map[string]any{"name": "a"}, "list": []any{1}}
	value := map[string]any{"nested": map[string]any{"x": 1}}

	got := Merge(target, path.Path{"metadata", "extra"}, value)
	got = Merge(got, path.Path{"list", 3}, 9)

	assert.Equal(t, map[string]any{"metadata": map[string]any{"name": "a"}, "list": []any{1}}, target)

	// Mutating the result must not reach the merged-in value.
	got.(map[string]any)["metadata"].(map[string]any)["extra"].(map[string]any)["nested"].(map[string]any)["x"] = 2
	assert.Equal(t, 1, value["nested"].(map[string]any)["x"])
}

func TestSetReplacesMaps(t *testing.T) {
	target := Document{"address": map[string]any{"public": "1.2.3.4", "private": "10.0.0.1"}}

	got := SetIn(target, path.Path{"address"}, map[string]any{"public": "5.6.7.8"})

	assert.Equal(t, Document{"address": map[string]any{"public": "5.6.7.8"}}, got)
	assert.Equal(t, "10.0.0.1", target["address"].(map[string]any)["private"])
}

func TestMergeLastWriteWins(t *testing.T) {
	doc := MergeInto(Document{}, path.Path{"containers", 0, "name"}, "from-id")
	doc = MergeInto(doc, path.Path{"containers", 0, "name"}, "from-name")

	got, ok := Get(doc, path.Path{"containers", 0, "name"})
	require.True(t, ok)
	assert.Equal(t, "from-name", got)
}

func TestMergeDocuments(t *testing.T) {
	got := MergeDocuments(
		Document{"kind": "ReplicationController", "spec": map[string]any{"replicas": 1}},
		Document{"spec": map[string]any{"selector": map[string]any{"app": "web"}}},
	)

	assert.Equal(t, Document{
		"kind": "ReplicationController",
		"spec": map[string]any{"replicas": 1, "selector": map[string]any{"app": "web"}},
	}, got)
}

func TestCloneDocument(t *testing.T) {
	assert.Equal(t, Document{}, CloneDocument(nil))

	orig := Document{"a": []any{map[string]any{"b": 1}}}
	c := CloneDocument(orig)
	c["a"].([]any)[0].(map[string]any)["b"] = 2

	assert.Equal(t, 1, orig["a"].([]any)[0].(map[string]any)["b"])
}
