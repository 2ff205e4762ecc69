package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/ndarray"
)

// Op identifies a differentiable primitive.
//
// Each Op defines two rules:
//   - forward: computes the output value and saves its inputs in the Context
//   - backward: maps the output gradient to one gradient per saved input,
//     each reduced to that input's shape
//
// Adding a primitive means adding a constant here and a case to forward and
// backward.
type Op int

// Supported operations.
const (
	// OpAdd is element-wise addition: d(a+b)/da = d(a+b)/db = 1.
	OpAdd Op = iota + 1
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Arity returns the number of inputs the operation takes.
func (op Op) Arity() int {
	switch op {
	case OpAdd:
		return 2
	default:
		return 0
	}
}

// Forward runs the forward rule of op on inputs, recording them in ctx.
func Forward[T ndarray.Number](op Op, ctx *Context[T], inputs ...*Tensor[T]) (*ndarray.NDArray[T], error) {
	if len(inputs) != op.Arity() {
		return nil, errors.Wrapf(ErrArity, "%s: expected %d inputs, got %d", op, op.Arity(), len(inputs))
	}
	for i, in := range inputs {
		if in == nil {
			return nil, errors.Errorf("%s: input %d is nil", op, i)
		}
	}

	switch op {
	case OpAdd:
		return addForward(ctx, inputs[0], inputs[1])
	default:
		return nil, errors.Errorf("forward: unsupported operation %d", int(op))
	}
}

// Backward runs the backward rule of op. It returns one gradient per tensor
// saved in ctx, in the same order.
func Backward[T ndarray.Number](op Op, ctx *Context[T], gradOutput *ndarray.NDArray[T]) ([]*ndarray.NDArray[T], error) {
	switch op {
	case OpAdd:
		return addBackward(ctx, gradOutput)
	default:
		return nil, errors.Errorf("backward: unsupported operation %d", int(op))
	}
}

// Apply runs op on inputs and wraps the result in a new Tensor that records
// the operation and a fresh Context.
func Apply[T ndarray.Number](op Op, inputs ...*Tensor[T]) (*Tensor[T], error) {
	ctx := NewContext[T]()
	out, err := Forward(op, ctx, inputs...)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{
		data: out,
		prov: &provenance[T]{op: op, ctx: ctx},
	}, nil
}
