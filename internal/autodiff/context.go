package autodiff

import "github.com/born-ml/gradtape/internal/ndarray"

// Context records the tensors an operation consumed. Their order matches the
// operation's input order, which is also the order of the gradients its
// backward rule returns.
type Context[T ndarray.Number] struct {
	savedTensors []*Tensor[T]
}

// NewContext returns an empty Context.
func NewContext[T ndarray.Number]() *Context[T] {
	return &Context[T]{}
}

// SaveForBackward appends tensors to the saved inputs.
func (c *Context[T]) SaveForBackward(tensors ...*Tensor[T]) {
	c.savedTensors = append(c.savedTensors, tensors...)
}

// SavedTensors returns the saved inputs in input order.
func (c *Context[T]) SavedTensors() []*Tensor[T] {
	saved := make([]*Tensor[T], len(c.savedTensors))
	copy(saved, c.savedTensors)
	return saved
}
