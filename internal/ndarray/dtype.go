// Package ndarray provides a dense, row-major N-dimensional array with
// broadcasting arithmetic and batched matrix multiplication.
package ndarray

import "golang.org/x/exp/constraints"

// Number is a constraint for supported element types: any integer or
// floating-point type with native + and *.
type Number interface {
	constraints.Integer | constraints.Float
}
