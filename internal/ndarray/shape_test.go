package ndarray

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 12, Shape{3, 4}.NumElements())
	assert.Equal(t, 0, Shape{3, 0, 2}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 1}.Validate())
	require.ErrorIs(t, Shape{2, -1}.Validate(), ErrShape)
}

func TestShape_ComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{2, 1, 3, 5}, []int{15, 15, 5, 1}},
	}
	for _, tt := range tests {
		strides := tt.shape.ComputeStrides()
		assert.Equal(t, tt.want, strides, "shape %v", tt.shape)

		for i := range tt.shape {
			assert.Equal(t, tt.shape[i+1:].NumElements(), strides[i], "shape %v axis %d", tt.shape, i)
		}
	}
}

func TestShape_StridesVisitEveryElementOnce(t *testing.T) {
	for _, shape := range []Shape{{}, {4}, {2, 3}, {2, 1, 3}, {3, 2, 2, 2}} {
		visits := make([]int, shape.NumElements())
		it := NewMultiIndex(shape)
		for it.Next() {
			visits[shape.Offset(it.Index())]++
		}
		for i, v := range visits {
			assert.Equal(t, 1, v, "shape %v offset %d", shape, i)
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{"same shape", Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false},
		{"column", Shape{3, 1}, Shape{3, 4}, Shape{3, 4}, false},
		{"row", Shape{1, 4}, Shape{3, 4}, Shape{3, 4}, false},
		{"both sides", Shape{3, 1, 5}, Shape{1, 4, 5}, Shape{3, 4, 5}, false},
		{"scalar", Shape{}, Shape{}, Shape{}, false},
		{"mismatch", Shape{3, 4}, Shape{2, 4}, nil, true},
		{"rank mismatch", Shape{4}, Shape{3, 4}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			reversed, err := BroadcastShapes(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, reversed, "broadcast must be symmetric")
		})
	}
}

func TestExpandFactors(t *testing.T) {
	padded, repeats, err := ExpandFactors(Shape{3, 1}, Shape{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3, 1}, padded)
	assert.Equal(t, []int{2, 1, 4}, repeats)

	_, _, err = ExpandFactors(Shape{2, 3, 4}, Shape{3, 4})
	require.ErrorIs(t, err, ErrShape)

	_, _, err = ExpandFactors(Shape{2, 4}, Shape{3, 4})
	require.ErrorIs(t, err, ErrShape)
	assert.True(t, errors.Is(err, ErrShape))
}
