package autodiff

import (
	"github.com/born-ml/gradtape/internal/ndarray"
)

// addForward computes a + b with broadcasting and saves [a, b].
func addForward[T ndarray.Number](ctx *Context[T], a, b *Tensor[T]) (*ndarray.NDArray[T], error) {
	out, err := a.data.Add(b.data)
	if err != nil {
		return nil, err
	}
	ctx.SaveForBackward(a, b)
	return out, nil
}

// addBackward passes gradOutput through to both inputs, summed over the axes
// each input was broadcast along.
//
// Example:
//
//	Forward: a[1,4] + b[3,4] -> c[3,4]
//	Backward: grad_c[3,4] -> grad_a[1,4] (sum along dim 0), grad_b[3,4]
func addBackward[T ndarray.Number](ctx *Context[T], gradOutput *ndarray.NDArray[T]) ([]*ndarray.NDArray[T], error) {
	grads := make([]*ndarray.NDArray[T], len(ctx.savedTensors))
	for i, in := range ctx.savedTensors {
		g, err := reduceBroadcast(gradOutput, in.data.Shape())
		if err != nil {
			return nil, err
		}
		grads[i] = g
	}
	return grads, nil
}
