// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Tensors wrap ndarray values and record the operation that produced them.
// Calling Backward on any tensor fills the gradient slot of it and of every
// tensor it was computed from, summing contributions from shared inputs.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/ndarray"
//	)
//
//	func main() {
//	    a := autodiff.NewTensor(ndarray.Ones[float32](ndarray.Shape{3, 4}))
//	    b, _ := a.Add(a)
//	    _ = b.Backward()
//	    fmt.Println(a.Grad()) // all twos
//	}
package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/ndarray"
)

// Tensor is a node of the computation graph.
type Tensor[T ndarray.Number] = autodiff.Tensor[T]

// Context records the inputs consumed by an operation.
type Context[T ndarray.Number] = autodiff.Context[T]

// Op identifies a differentiable primitive.
type Op = autodiff.Op

// Supported operations.
const (
	OpAdd Op = autodiff.OpAdd
)

// ErrArity is returned when an operation receives the wrong number of inputs.
var ErrArity = autodiff.ErrArity

// NewTensor creates a leaf tensor.
func NewTensor[T ndarray.Number](data *ndarray.NDArray[T]) *Tensor[T] {
	return autodiff.NewTensor(data)
}

// Apply runs op on inputs and returns the recorded result.
func Apply[T ndarray.Number](op Op, inputs ...*Tensor[T]) (*Tensor[T], error) {
	return autodiff.Apply(op, inputs...)
}
