package autodiff

import "github.com/born-ml/gradtape/internal/ndarray"

// countContributions walks every tensor reachable from root through producer
// links and counts, per tensor, the gradient contributions it will receive:
// one per consumer edge, so a tensor used twice by one operation counts twice.
func countContributions[T ndarray.Number](root *Tensor[T]) map[*Tensor[T]]int {
	pending := map[*Tensor[T]]int{root: 0}
	stack := []*Tensor[T]{root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.prov == nil {
			continue
		}
		for _, in := range node.prov.ctx.savedTensors {
			if _, seen := pending[in]; !seen {
				stack = append(stack, in)
			}
			pending[in]++
		}
	}
	return pending
}
