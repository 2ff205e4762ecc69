package autodiff

import (
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/gradtape/internal/ndarray"
)

// backwardMu serializes traversals so a single Backward owns the gradient
// slots of its subgraph until it returns.
var backwardMu sync.Mutex

// Backward computes the gradient of t with respect to every tensor it was
// computed from, seeding t's gradient with ones.
//
// Tensors are processed in reverse topological order: a tensor propagates to
// its inputs only after all of its consumers have delivered their
// contributions, so a tensor shared by several paths receives their sum.
// Gradients are added to any value already in a slot; call ZeroGrad to reset.
//
// On error the gradient slots are left partially updated.
func (t *Tensor[T]) Backward() error {
	backwardMu.Lock()
	defer backwardMu.Unlock()

	pending := countContributions(t)
	klog.V(2).Infof("backward: root %s, %d reachable tensors", t, len(pending))

	incoming := map[*Tensor[T]]*ndarray.NDArray[T]{
		t: ndarray.OnesLike(t.data),
	}
	ready := []*Tensor[T]{t}

	for len(ready) > 0 {
		node := ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		grad := incoming[node]
		delete(incoming, node)
		if err := node.accumulateGrad(grad); err != nil {
			return errors.WithMessagef(err, "backward: accumulating gradient of %s", node)
		}
		if node.prov == nil {
			continue
		}

		op, ctx := node.prov.op, node.prov.ctx
		inputGrads, err := Backward(op, ctx, grad)
		if err != nil {
			return errors.WithMessagef(err, "backward: %s", node)
		}
		if len(inputGrads) != len(ctx.savedTensors) {
			return errors.Errorf("backward: %s returned %d gradients for %d inputs",
				op, len(inputGrads), len(ctx.savedTensors))
		}
		klog.V(3).Infof("backward: %s -> %d inputs", node, len(inputGrads))

		for i, in := range ctx.savedTensors {
			g := inputGrads[i]
			if prev, ok := incoming[in]; ok {
				if g, err = prev.Add(g); err != nil {
					return errors.WithMessagef(err, "backward: summing contributions to %s", in)
				}
			}
			incoming[in] = g

			pending[in]--
			if pending[in] == 0 {
				ready = append(ready, in)
			}
		}
	}
	return nil
}
