package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZipWithTruncates(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	assert.Equal(t, []int{11, 22}, ZipWith([]int{1, 2, 3}, []int{10, 20}, sum))
	assert.Equal(t, []int{}, ZipWith([]int{}, []int{10}, sum))
	assert.Equal(t, []int{}, ZipWith[int, int, int](nil, nil, sum))
}

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]string{"x", "y", "z"})
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)

	a, b = Unpack2([]string{"x"})
	assert.Equal(t, "x", a)
	assert.Empty(t, b)

	a, b = Unpack2[[]string](nil)
	assert.Empty(t, a)
	assert.Empty(t, b)
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{4, 5})
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = First([]int{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsMultiple([]int{1, 2}))
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 65535))
	assert.True(t, IsInRange(1.0, 80.0, 65535.0))
	assert.False(t, IsInRange(1, 0, 65535))
	assert.False(t, IsInRange(1, 70000, 65535))
}
