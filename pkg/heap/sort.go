package heap

import (
	"slices"

	"github.com/dmitrymomot/collections/pkg/order"
)

// Sort returns a copy of items arranged so that the highest-priority value
// comes first: order.Less sorts ascending, order.Greater descending.
// The input slice is not modified. Heap sort is not stable.
func Sort[T any](items []T, fn order.Func[T]) []T {
	if fn == nil {
		panic(ErrNilOrder)
	}

	// Sorting in place needs the lowest-priority value at the root, so that
	// it can be swapped to the end of the shrinking unsorted prefix.
	h := &Heap[T]{items: slices.Clone(items), order: order.Reverse(fn)}
	h.heapify()
	for end := len(h.items) - 1; end > 0; end-- {
		h.swap(0, end)
		h.down(0, end)
	}
	return h.items
}

// TopK retains the k highest-priority values pushed into it.
type TopK[T any] struct {
	k     int
	order order.Func[T]
	// worst retained value at the root
	heap *Heap[T]
}

// NewTopK creates a tracker keeping at most k values.
// It panics if k is not positive or fn is nil.
func NewTopK[T any](k int, fn order.Func[T]) *TopK[T] {
	if k <= 0 {
		panic(ErrInvalidTopK)
	}
	if fn == nil {
		panic(ErrNilOrder)
	}
	return &TopK[T]{k: k, order: fn, heap: New(order.Reverse(fn))}
}

// Push offers v to the tracker. It reports whether v was retained.
func (t *TopK[T]) Push(v T) bool {
	if t.heap.Len() < t.k {
		t.heap.Insert(v)
		return true
	}
	worst, _ := t.heap.Peek()
	if !t.order(v, worst) {
		return false
	}
	t.heap.Replace(0, v)
	return true
}

// Values returns the retained values, highest priority first.
func (t *TopK[T]) Values() []T {
	return Sort(t.heap.items, t.order)
}

// Len returns the number of retained values.
func (t *TopK[T]) Len() int { return t.heap.Len() }

// K returns the configured size.
func (t *TopK[T]) K() int { return t.k }
