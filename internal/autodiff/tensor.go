package autodiff

import (
	"fmt"
	"sync"

	"github.com/born-ml/gradtape/internal/ndarray"
)

// provenance records how a non-leaf tensor was produced.
type provenance[T ndarray.Number] struct {
	op  Op
	ctx *Context[T]
}

// Tensor is a node of the computation graph.
//
// Its value and provenance never change after construction. The gradient
// slot starts empty and is written only by Backward.
type Tensor[T ndarray.Number] struct {
	data *ndarray.NDArray[T]
	prov *provenance[T] // nil for leaves

	mu   sync.RWMutex
	grad *ndarray.NDArray[T]
}

// NewTensor creates a leaf tensor holding data.
//
// Example:
//
//	a := autodiff.NewTensor(ndarray.Ones[int32](ndarray.Shape{3, 1}))
func NewTensor[T ndarray.Number](data *ndarray.NDArray[T]) *Tensor[T] {
	return &Tensor[T]{data: data}
}

// Data returns the tensor's value.
func (t *Tensor[T]) Data() *ndarray.NDArray[T] {
	return t.data
}

// Shape returns the shape of the tensor's value.
func (t *Tensor[T]) Shape() ndarray.Shape {
	return t.data.Shape()
}

// Grad returns the accumulated gradient, or nil if Backward has not reached
// this tensor yet.
func (t *Tensor[T]) Grad() *ndarray.NDArray[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grad
}

// ZeroGrad clears the gradient slot.
func (t *Tensor[T]) ZeroGrad() {
	t.mu.Lock()
	t.grad = nil
	t.mu.Unlock()
}

// IsLeaf reports whether the tensor was created from data rather than by an
// operation.
func (t *Tensor[T]) IsLeaf() bool {
	return t.prov == nil
}

// Op returns the operation that produced the tensor. ok is false for leaves.
func (t *Tensor[T]) Op() (op Op, ok bool) {
	if t.prov == nil {
		return 0, false
	}
	return t.prov.op, true
}

// Inputs returns the tensors consumed by the producing operation, in input
// order. Leaves have none.
func (t *Tensor[T]) Inputs() []*Tensor[T] {
	if t.prov == nil {
		return nil
	}
	return t.prov.ctx.SavedTensors()
}

// Add returns t + other, recorded in the graph.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return Apply(OpAdd, t, other)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	name := "leaf"
	if t.prov != nil {
		name = t.prov.op.String()
	}
	return fmt.Sprintf("Tensor[%s]%v", name, []int(t.data.Shape()))
}

// accumulateGrad adds g into the gradient slot.
func (t *Tensor[T]) accumulateGrad(g *ndarray.NDArray[T]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.grad == nil {
		t.grad = g
		return nil
	}
	sum, err := t.grad.Add(g)
	if err != nil {
		return err
	}
	t.grad = sum
	return nil
}
