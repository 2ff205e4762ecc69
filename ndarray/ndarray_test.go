// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/ndarray"
)

func TestPublicAPI_AddAndMatMul(t *testing.T) {
	a, err := ndarray.New([]int32{1, 2, 3}, ndarray.Shape{3, 1})
	require.NoError(t, err)
	b, err := ndarray.New([]int32{4, 5, 6}, ndarray.Shape{3, 1})
	require.NoError(t, err)

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 7, 9}, c.Data())

	m, err := ndarray.Ones[int32](ndarray.Shape{2, 3}).MatMul(ndarray.Ones[int32](ndarray.Shape{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 4}, m.Shape())
	assert.Equal(t, []int32{3, 3, 3, 3, 3, 3, 3, 3}, m.Data())

	_, err = ndarray.Ones[int32](ndarray.Shape{3}).MatMul(m)
	require.ErrorIs(t, err, ndarray.ErrDimension)
}

func TestPublicAPI_BroadcastShapes(t *testing.T) {
	s, err := ndarray.BroadcastShapes(ndarray.Shape{3, 1}, ndarray.Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 4}, s)

	_, err = ndarray.BroadcastShapes(ndarray.Shape{3, 4}, ndarray.Shape{2, 4})
	require.ErrorIs(t, err, ndarray.ErrShape)
}
