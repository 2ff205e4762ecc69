package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/ndarray"
)

// reduceBroadcast sums grad down to targetShape, undoing a forward broadcast.
//
// Leading axes absent from the target and axes where the target has size 1
// are summed out.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast[T ndarray.Number](grad *ndarray.NDArray[T], targetShape ndarray.Shape) (*ndarray.NDArray[T], error) {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		return grad, nil
	}
	if len(targetShape) > len(gradShape) {
		return nil, errors.Wrapf(ndarray.ErrShape, "cannot reduce gradient %v to higher-rank shape %v",
			gradShape, targetShape)
	}

	lead := len(gradShape) - len(targetShape)
	result := grad
	for axis, dim := range gradShape {
		if axis >= lead && (targetShape[axis-lead] != 1 || dim == 1) {
			continue
		}
		var err error
		result, err = result.SumAxis(axis)
		if err != nil {
			return nil, err
		}
	}

	reduced, err := result.Reshape(targetShape)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot reduce gradient %v to %v", gradShape, targetShape)
	}
	return reduced, nil
}
