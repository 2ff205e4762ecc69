package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/ndarray"
)

func TestReduceBroadcast(t *testing.T) {
	grad, err := ndarray.New([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ndarray.Shape{2, 3, 2})
	require.NoError(t, err)

	tests := []struct {
		name   string
		target ndarray.Shape
		want   []int32
	}{
		{"same shape", ndarray.Shape{2, 3, 2}, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"inner axis", ndarray.Shape{2, 3, 1}, []int32{3, 7, 11, 15, 19, 23}},
		{"outer axis", ndarray.Shape{1, 3, 2}, []int32{8, 10, 12, 14, 16, 18}},
		{"leading axis dropped", ndarray.Shape{3, 2}, []int32{8, 10, 12, 14, 16, 18}},
		{"leading and inner", ndarray.Shape{3, 1}, []int32{18, 26, 34}},
		{"all", ndarray.Shape{1, 1, 1}, []int32{78}},
		{"scalar", ndarray.Shape{}, []int32{78}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reduceBroadcast(grad, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.target, got.Shape())
			assert.Equal(t, tt.want, got.Data())
		})
	}
}

func TestReduceBroadcast_Errors(t *testing.T) {
	grad := ndarray.Ones[int32](ndarray.Shape{3, 4})

	_, err := reduceBroadcast(grad, ndarray.Shape{2, 3, 4})
	require.ErrorIs(t, err, ndarray.ErrShape)

	_, err = reduceBroadcast(grad, ndarray.Shape{3, 2})
	require.ErrorIs(t, err, ndarray.ErrShape)
}

func TestCountContributions(t *testing.T) {
	a := NewTensor(ndarray.Ones[int32](ndarray.Shape{2}))
	b := NewTensor(ndarray.Ones[int32](ndarray.Shape{2}))

	c, err := a.Add(a)
	require.NoError(t, err)
	d, err := c.Add(b)
	require.NoError(t, err)
	e, err := d.Add(c)
	require.NoError(t, err)

	pending := countContributions(e)
	assert.Equal(t, map[*Tensor[int32]]int{
		e: 0,
		d: 1,
		c: 2,
		b: 1,
		a: 2,
	}, pending)
}
