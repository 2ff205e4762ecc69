package ndarray

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/parallel"
)

var parallelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelConfig.Store(&cfg)
}

// SetParallelConfig sets how MatMul distributes batch slices across
// goroutines. Use parallel.Sequential() to keep all work on the caller.
func SetParallelConfig(cfg parallel.Config) {
	parallelConfig.Store(&cfg)
}

// ParallelConfig returns the config used by MatMul.
func ParallelConfig() parallel.Config {
	return *parallelConfig.Load()
}

// Add returns the element-wise sum a + b.
//
// Both operands must have the same rank; axes of size 1 are broadcast.
// Returns ErrShape on incompatible shapes.
//
// Example:
//
//	(3, 1) + (3, 4) → (3, 4)
func (a *NDArray[T]) Add(b *NDArray[T]) (*NDArray[T], error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	aBuf, err := broadcastTo(a.buf, a.shape, shape)
	if err != nil {
		return nil, err
	}
	bBuf, err := broadcastTo(b.buf, b.shape, shape)
	if err != nil {
		return nil, err
	}

	for i := range aBuf {
		aBuf[i] += bBuf[i]
	}
	return wrap(aBuf, shape), nil
}

// SumAxis sums the array along axis, keeping it with size 1.
//
// Example:
//
//	(3, 4).SumAxis(0) → (1, 4)
func (a *NDArray[T]) SumAxis(axis int) (*NDArray[T], error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, errors.Wrapf(ErrShape, "invalid axis %d for shape %v", axis, a.shape)
	}

	outShape := a.shape.Clone()
	outShape[axis] = 1
	out := make([]T, outShape.NumElements())

	// View the buffer as (outer, axis, inner) and fold the middle axis.
	outer := a.shape[:axis].NumElements()
	size := a.shape[axis]
	inner := a.shape[axis+1:].NumElements()
	for o := 0; o < outer; o++ {
		for k := 0; k < size; k++ {
			src := a.buf[(o*size+k)*inner : (o*size+k+1)*inner]
			dst := out[o*inner : (o+1)*inner]
			for i, v := range src {
				dst[i] += v
			}
		}
	}
	return wrap(out, outShape), nil
}

// MatMul performs batched matrix multiplication.
//
// The last two axes of each operand are the matrix dimensions, the rest are
// batch dimensions. Batch dimensions must have equal rank and are broadcast
// against each other.
//
//	(M, K) @ (K, N) → (M, N)
//	(B, M, K) @ (B, K, N) → (B, M, N)
//	(1, M, K) @ (B, K, N) → (B, M, N)
//
// Returns ErrDimension if an operand has rank < 2 or the inner dimensions
// differ, ErrShape if the batch dimensions are incompatible.
func (a *NDArray[T]) MatMul(b *NDArray[T]) (*NDArray[T], error) {
	aShape, bShape := a.shape, b.shape
	if len(aShape) < 2 || len(bShape) < 2 {
		return nil, errors.Wrapf(ErrDimension, "matmul: inputs must be at least 2D, got %dD and %dD",
			len(aShape), len(bShape))
	}

	aBatch, bBatch := aShape[:len(aShape)-2], bShape[:len(bShape)-2]
	m, k1 := aShape[len(aShape)-2], aShape[len(aShape)-1]
	k2, n := bShape[len(bShape)-2], bShape[len(bShape)-1]
	if k1 != k2 {
		return nil, errors.Wrapf(ErrDimension, "matmul: inner dimension mismatch: %v @ %v (%d vs %d)",
			aShape, bShape, k1, k2)
	}

	batch, err := BroadcastShapes(aBatch, bBatch)
	if err != nil {
		return nil, errors.WithMessage(err, "matmul: batch dimensions")
	}

	aFull := append(batch.Clone(), m, k1)
	bFull := append(batch.Clone(), k2, n)
	aBuf, err := broadcastTo(a.buf, aShape, aFull)
	if err != nil {
		return nil, err
	}
	bBuf, err := broadcastTo(b.buf, bShape, bFull)
	if err != nil {
		return nil, err
	}

	outShape := append(batch.Clone(), m, n)
	out := make([]T, outShape.NumElements())

	var coords [][]int
	it := NewMultiIndex(batch)
	for it.Next() {
		coords = append(coords, append([]int(nil), it.Index()...))
	}

	parallel.For(len(coords), func(i int) {
		idx := coords[i]
		aOff, bOff, cOff := aFull.Offset(idx), bFull.Offset(idx), outShape.Offset(idx)
		matmulInto(out[cOff:cOff+m*n], aBuf[aOff:aOff+m*k1], bBuf[bOff:bOff+k1*n], m, k1, n)
	}, ParallelConfig())

	return wrap(out, outShape), nil
}

// matmulInto computes c = a @ b for row-major a (m×k) and b (k×n).
func matmulInto[T Number](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
