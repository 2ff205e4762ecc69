package ndarray

import (
	"github.com/pkg/errors"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that all dimensions are non-negative.
// Zero-sized axes are allowed and describe empty arrays.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShape, "invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset returns the flat buffer offset of the coordinate idx, which may
// address only the leading len(idx) axes.
func (s Shape) Offset(idx []int) int {
	strides := s.ComputeStrides()
	offset := 0
	for i, v := range idx {
		offset += v * strides[i]
	}
	return offset
}

// BroadcastShapes merges two shapes of equal rank.
//
// Axes are compared from right to left. They are compatible if they are
// equal or one of them is 1. Unlike NumPy, missing leading dimensions are
// not padded: shapes of different rank are rejected.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error
//	(4,)   + (3, 4) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrShape, "shapes %v and %v are not broadcastable: rank %d vs %d",
			a, b, len(a), len(b))
	}

	result := make(Shape, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		aDim, bDim := a[i], b[i]
		switch {
		case aDim == bDim:
			result[i] = aDim
		case aDim == 1:
			result[i] = bDim
		case bDim == 1:
			result[i] = aDim
		default:
			return nil, errors.Wrapf(ErrShape, "shapes %v and %v are not broadcastable (dimension %d: %d vs %d)",
				a, b, i, aDim, bDim)
		}
	}
	return result, nil
}

// ExpandFactors left-pads shape with 1s to the rank of target and returns the
// padded shape together with the per-axis repeat factor needed to reach target.
func ExpandFactors(shape, target Shape) (padded Shape, repeats []int, err error) {
	if len(target) < len(shape) {
		return nil, nil, errors.Wrapf(ErrShape, "target shape %v has fewer axes than shape %v", target, shape)
	}

	padded = make(Shape, len(target))
	diff := len(target) - len(shape)
	for i := range padded {
		if i < diff {
			padded[i] = 1
		} else {
			padded[i] = shape[i-diff]
		}
	}

	repeats = make([]int, len(target))
	for i, pDim := range padded {
		tDim := target[i]
		switch {
		case pDim == tDim:
			repeats[i] = 1
		case pDim == 1:
			repeats[i] = tDim
		default:
			return nil, nil, errors.Wrapf(ErrShape, "shape %v cannot be broadcast to %v (dimension %d: %d vs %d)",
				shape, target, i, pDim, tDim)
		}
	}
	return padded, repeats, nil
}
