// Package autodiff implements reverse-mode automatic differentiation over
// ndarray values.
//
// Architecture:
//   - Tensor: a graph node holding its value, its provenance and a gradient slot
//   - Op: the closed set of differentiable primitives (Add)
//   - Context: the inputs an Op invocation consumed, in input order
//   - Backward: propagates gradients in reverse topological order, summing
//     every contribution a shared tensor receives before propagating it
//
// Usage:
//
//	a := autodiff.NewTensor(ndarray.Ones[float32](ndarray.Shape{3, 4}))
//	b := autodiff.NewTensor(ndarray.Ones[float32](ndarray.Shape{1, 4}))
//	c, err := a.Add(b)
//	if err != nil { ... }
//	if err := c.Backward(); err != nil { ... }
//	fmt.Println(b.Grad()) // (1, 4) [3 3 3 3]
package autodiff

import (
	"github.com/pkg/errors"
)

// ErrArity is returned when an Op receives the wrong number of inputs.
var ErrArity = errors.New("arity error")
