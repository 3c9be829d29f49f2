package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"cpus", "cpu", 1},
		{"memroy", "memory", 2},
		{"größe", "grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, s := range []string{"host_port", "hostPort", "host-port", "HOST PORT"} {
		assert.Equal(t, "hostport", Normalize(s), s)
	}

	assert.Equal(t, "addresspublic", Normalize("address.public"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("envVars", "env_vars"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.75, Similarity("cpus", "cpu"), 1e-9)
	assert.Less(t, Similarity("image", "respawn"), DefaultThreshold)
}

func TestSuggest(t *testing.T) {
	keys := []string{"command", "container_port", "cpus", "host_port", "memory", "name"}

	assert.Equal(t, []string{"memory"}, Suggest("memroy", keys, DefaultThreshold))
	assert.Equal(t, []string{"host_port"}, Suggest("hostPort", keys, DefaultThreshold))
	assert.Equal(t, []string{"cpus"}, Suggest("cpu", keys, DefaultThreshold))
	assert.Empty(t, Suggest("volumes", keys, DefaultThreshold))
	assert.Empty(t, Suggest("cpus", keys, DefaultThreshold))
}
