package ndarray

// MultiIndex walks every coordinate of a shape in row-major order: the last
// axis increments fastest and carries into the one before it on overflow.
//
// It is lazy and single-use:
//
//	it := NewMultiIndex(Shape{2, 3})
//	for it.Next() {
//	    idx := it.Index() // [0 0], [0 1], ... [1 2]
//	}
type MultiIndex struct {
	shape Shape
	curr  []int
	next  []int // nil once exhausted
}

// NewMultiIndex returns an iterator over all coordinates of shape.
// A rank-0 shape yields a single empty coordinate; a shape with a zero-sized
// axis yields nothing.
func NewMultiIndex(shape Shape) *MultiIndex {
	it := &MultiIndex{shape: shape.Clone()}
	if shape.NumElements() > 0 {
		it.next = make([]int, len(shape))
	}
	return it
}

// Next advances to the next coordinate and reports whether one exists.
func (it *MultiIndex) Next() bool {
	if it.next == nil {
		return false
	}
	it.curr = append(it.curr[:0], it.next...)

	for i := len(it.shape) - 1; i >= 0; i-- {
		if it.next[i]+1 < it.shape[i] {
			it.next[i]++
			for j := i + 1; j < len(it.next); j++ {
				it.next[j] = 0
			}
			return true
		}
	}
	it.next = nil
	return true
}

// Index returns the current coordinate. The slice is reused by Next, copy it
// to retain it.
func (it *MultiIndex) Index() []int {
	return it.curr
}
