// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for dense N-dimensional arrays.
//
// Arrays are row-major, immutable values parameterized by any integer or
// floating-point element type. Element-wise operations broadcast axes of size
// 1 between operands of equal rank; MatMul broadcasts batch dimensions.
//
// Example:
//
//	a, _ := ndarray.New([]int32{1, 2, 3}, ndarray.Shape{3, 1})
//	b, _ := ndarray.New([]int32{4, 5, 6}, ndarray.Shape{3, 1})
//	c, _ := a.Add(b) // (3, 1) [5 7 9]
package ndarray

import (
	"github.com/born-ml/gradtape/internal/ndarray"
	"github.com/born-ml/gradtape/internal/parallel"
)

// Number is a constraint for element types: any integer or float type.
type Number = ndarray.Number

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// NDArray is a dense row-major array.
type NDArray[T Number] = ndarray.NDArray[T]

// MultiIndex iterates all coordinates of a shape in row-major order.
type MultiIndex = ndarray.MultiIndex

// ParallelConfig controls how MatMul spreads batch slices across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by array operations. Match with errors.Is.
var (
	ErrShape     = ndarray.ErrShape
	ErrDimension = ndarray.ErrDimension
)

// New creates an array from a flat buffer (copied) and a shape.
func New[T Number](buf []T, shape Shape) (*NDArray[T], error) {
	return ndarray.New(buf, shape)
}

// Zeros creates an array filled with zeros.
func Zeros[T Number](shape Shape) *NDArray[T] {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Number](shape Shape) *NDArray[T] {
	return ndarray.Ones[T](shape)
}

// OnesLike creates an array of ones shaped like other.
func OnesLike[T Number](other *NDArray[T]) *NDArray[T] {
	return ndarray.OnesLike(other)
}

// BroadcastShapes merges two equal-rank shapes under broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(a, b)
}

// NewMultiIndex returns an iterator over all coordinates of shape.
func NewMultiIndex(shape Shape) *MultiIndex {
	return ndarray.NewMultiIndex(shape)
}

// SetParallelConfig sets how MatMul distributes batch slices.
func SetParallelConfig(cfg ParallelConfig) {
	ndarray.SetParallelConfig(cfg)
}

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a config that keeps MatMul on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
