package ndarray

import "github.com/pkg/errors"

// Common errors. Operations wrap these with details, so match with errors.Is.
var (
	// ErrShape reports a rank mismatch, an incompatible broadcast or a buffer
	// whose length disagrees with its shape.
	ErrShape = errors.New("shape error")

	// ErrDimension reports a matmul operand of rank < 2 or a mismatched inner
	// dimension.
	ErrDimension = errors.New("dimension error")
)
