package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(shape Shape) [][]int {
	var out [][]int
	it := NewMultiIndex(shape)
	for it.Next() {
		out = append(out, append([]int{}, it.Index()...))
	}
	return out
}

func TestMultiIndex_RowMajor(t *testing.T) {
	want := [][]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	assert.Equal(t, want, collect(Shape{2, 3}))
}

func TestMultiIndex_CarriesAcrossAxes(t *testing.T) {
	got := collect(Shape{2, 2, 2})
	assert.Len(t, got, 8)
	assert.Equal(t, []int{0, 1, 1}, got[3])
	assert.Equal(t, []int{1, 0, 0}, got[4])
	assert.Equal(t, []int{1, 1, 1}, got[7])
}

func TestMultiIndex_Scalar(t *testing.T) {
	got := collect(Shape{})
	assert.Equal(t, [][]int{{}}, got)
}

func TestMultiIndex_SizeOne(t *testing.T) {
	assert.Equal(t, [][]int{{0, 0, 0}}, collect(Shape{1, 1, 1}))
}

func TestMultiIndex_ZeroSizedAxis(t *testing.T) {
	assert.Empty(t, collect(Shape{3, 0, 2}))
}

func TestMultiIndex_NotRestartable(t *testing.T) {
	it := NewMultiIndex(Shape{2})
	count := 0
	for it.Next() {
		count++
	}
	assert.Equal(t, 2, count)
	assert.False(t, it.Next())
}
