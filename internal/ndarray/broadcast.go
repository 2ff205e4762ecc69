package ndarray

// BroadcastTo materializes the array expanded to target.
//
// The shape is left-padded with 1s to target's rank, then every axis of size
// 1 is repeated to the target size. Returns ErrShape if target has fewer
// axes than the array or an axis is neither equal nor 1.
//
// Example:
//
//	a: (3, 1) [1 2 3]
//	a.BroadcastTo(Shape{2, 3, 2}) → (2, 3, 2) [1 1 2 2 3 3 1 1 2 2 3 3]
func (a *NDArray[T]) BroadcastTo(target Shape) (*NDArray[T], error) {
	buf, err := broadcastTo(a.buf, a.shape, target)
	if err != nil {
		return nil, err
	}
	return wrap(buf, target.Clone()), nil
}

// broadcastTo expands buf of the given shape to target.
func broadcastTo[T Number](buf []T, shape, target Shape) ([]T, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	padded, repeats, err := ExpandFactors(shape, target)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, target.NumElements())
	return replicate(out, buf, padded, repeats), nil
}

// replicate appends buf, laid out as shape, to out with every axis repeated
// by its factor. Outer axes replicate whole contiguous blocks: an axis of size
// 1 repeats its only block, any other axis walks its blocks in order.
func replicate[T Number](out, buf []T, shape Shape, repeats []int) []T {
	if len(shape) == 0 {
		return append(out, buf...)
	}

	inner := shape[1:].NumElements()
	for i := 0; i < shape[0]; i++ {
		block := buf[i*inner : (i+1)*inner]
		start := len(out)
		out = replicate(out, block, shape[1:], repeats[1:])
		expanded := out[start:]
		for r := 1; r < repeats[0]; r++ {
			out = append(out, expanded...)
		}
		if repeats[0] == 0 {
			out = out[:start]
		}
	}
	return out
}
