package heap

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dmitrymomot/collections/pkg/order"
)

// Heap is an array-backed binary heap. The value with the highest priority
// according to the order function sits at the root.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	order order.Func[T]
}

// New creates an empty heap ordered by fn.
// It panics if fn is nil.
func New[T any](fn order.Func[T]) *Heap[T] {
	if fn == nil {
		panic(ErrNilOrder)
	}
	return &Heap[T]{order: fn}
}

// NewFrom creates a heap holding a copy of seed.
// The heap property is established bottom-up in O(n).
func NewFrom[T any](seed []T, fn order.Func[T]) *Heap[T] {
	h := New(fn)
	h.items = slices.Clone(seed)
	h.heapify()
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Insert adds v to the heap. O(log n).
func (h *Heap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// InsertAll inserts every value in vs.
func (h *Heap[T]) InsertAll(vs ...T) {
	for _, v := range vs {
		h.Insert(v)
	}
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// RemoveRoot removes and returns the root. O(log n).
func (h *Heap[T]) RemoveRoot() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	if n == 1 {
		return h.truncate(), true
	}

	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.truncate()
	h.down(0, len(h.items))
	return root, true
}

// Remove removes and returns the element at index i.
// Indices outside [0, Len) leave the heap untouched and report false.
func (h *Heap[T]) Remove(i int) (T, bool) {
	n := len(h.items)
	if i < 0 || i >= n {
		var zero T
		return zero, false
	}

	last := n - 1
	if i != last {
		h.swap(i, last)
	}
	v := h.truncate()
	if i < len(h.items) {
		// The element moved into i may belong above or below it.
		h.down(i, len(h.items))
		h.up(i)
	}
	return v, true
}

// Replace removes the element at index i and inserts v.
// The new value is placed by priority, not written into slot i.
// It reports false without mutating the heap when i is out of range.
func (h *Heap[T]) Replace(i int, v T) bool {
	if _, ok := h.Remove(i); !ok {
		return false
	}
	h.Insert(v)
	return true
}

// Values returns a copy of the elements in heap order.
func (h *Heap[T]) Values() []T {
	return slices.Clone(h.items)
}

// All iterates over the elements in heap order.
// The heap must not be mutated during iteration.
func (h *Heap[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range h.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (h *Heap[T]) String() string {
	return fmt.Sprint(h.items)
}

func (h *Heap[T]) heapify() {
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// truncate drops the last element, zeroing its slot.
func (h *Heap[T]) truncate() T {
	n := len(h.items) - 1
	v := h.items[n]
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
	return v
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.order(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the element at i0 toward the leaves within items[:n].
// It reports whether the element moved.
func (h *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.order(h.items[j2], h.items[j1]) {
			j = j2 // right child
		}
		if !h.order(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
