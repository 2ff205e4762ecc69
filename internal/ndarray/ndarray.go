package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// NDArray is a dense array of elements of type T stored in row-major order
// (last axis varies fastest).
//
// Arrays are values: every operation returns a new NDArray and never
// modifies its operands.
type NDArray[T Number] struct {
	buf   []T
	shape Shape
}

// New creates an array from a flat buffer and a shape.
// The buffer is copied. Returns ErrShape if len(buf) != shape.NumElements().
//
// Example:
//
//	a, err := ndarray.New([]int32{1, 2, 3}, ndarray.Shape{3, 1})
func New[T Number](buf []T, shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(buf) {
		return nil, errors.Wrapf(ErrShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(buf))
	}
	data := make([]T, len(buf))
	copy(data, buf)
	return &NDArray[T]{buf: data, shape: shape.Clone()}, nil
}

// wrap builds an array that takes ownership of buf without copying.
func wrap[T Number](buf []T, shape Shape) *NDArray[T] {
	return &NDArray[T]{buf: buf, shape: shape}
}

// Zeros creates an array filled with zeros.
// Panics if shape has a negative dimension.
func Zeros[T Number](shape Shape) *NDArray[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return wrap(make([]T, shape.NumElements()), shape.Clone())
}

// Ones creates an array filled with ones. It seeds gradient propagation.
// Panics if shape has a negative dimension.
func Ones[T Number](shape Shape) *NDArray[T] {
	a := Zeros[T](shape)
	for i := range a.buf {
		a.buf[i] = 1
	}
	return a
}

// OnesLike creates an array of ones with the same shape as other.
func OnesLike[T Number](other *NDArray[T]) *NDArray[T] {
	return Ones[T](other.shape)
}

// Shape returns a copy of the array's shape.
func (a *NDArray[T]) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of axes.
func (a *NDArray[T]) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *NDArray[T]) Len() int {
	return len(a.buf)
}

// Data returns a copy of the flat row-major buffer.
func (a *NDArray[T]) Data() []T {
	data := make([]T, len(a.buf))
	copy(data, a.buf)
	return data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *NDArray[T]) At(indices ...int) T {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
	}
	return a.buf[a.shape.Offset(indices)]
}

// Equal reports whether both arrays have the same shape and elements.
func (a *NDArray[T]) Equal(other *NDArray[T]) bool {
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.buf {
		if other.buf[i] != v {
			return false
		}
	}
	return true
}

// Reshape returns a copy of the array with a new shape holding the same
// number of elements.
func (a *NDArray[T]) Reshape(shape Shape) (*NDArray[T], error) {
	return New(a.buf, shape)
}

// String returns a human-readable representation of the array.
func (a *NDArray[T]) String() string {
	return fmt.Sprintf("NDArray%v%v", []int(a.shape), a.buf)
}
