// Package median tracks the running median of a stream using two heaps.
//
// The lower half of the values lives in a max-heap and the upper half in a
// min-heap. The lower heap holds either as many values as the upper heap or
// exactly one more, so both middle values are always at the roots.
//
// Median reports the two middle values explicitly. For an odd count both are
// the same element; for an even count they are the largest value of the lower
// half and the smallest value of the upper half. Mean averages them for
// numeric types:
//
//	t := median.NewOrdered[int]()
//	for _, v := range []int{1, 2, 3, 4} {
//		t.Insert(v)
//	}
//	lo, hi, _ := t.Median() // 2, 3
//	m, _ := median.Mean(t)  // 2.5
package median

import (
	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/collections/pkg/heap"
	"github.com/dmitrymomot/collections/pkg/order"
)

// Tracker maintains the median of the values inserted so far.
// It is not safe for concurrent use.
type Tracker[T any] struct {
	less order.Func[T]
	low  *heap.Heap[T] // max-heap
	high *heap.Heap[T] // min-heap
}

// New creates a tracker. less must order values ascending.
func New[T any](less order.Func[T]) *Tracker[T] {
	return &Tracker[T]{
		less: less,
		low:  heap.New(order.Reverse(less)),
		high: heap.New(less),
	}
}

// NewOrdered creates a tracker for naturally ordered values.
func NewOrdered[T constraints.Ordered]() *Tracker[T] {
	return New(order.Less[T])
}

// Insert adds v to the tracker. O(log n).
func (t *Tracker[T]) Insert(v T) {
	if top, ok := t.low.Peek(); !ok || !t.less(top, v) {
		t.low.Insert(v)
	} else {
		t.high.Insert(v)
	}
	t.rebalance()
}

func (t *Tracker[T]) rebalance() {
	switch {
	case t.low.Len() < t.high.Len():
		v, _ := t.high.RemoveRoot()
		t.low.Insert(v)
	case t.low.Len()-t.high.Len() > 1:
		v, _ := t.low.RemoveRoot()
		t.high.Insert(v)
	}
}

// Median returns the middle values. For an odd count lower and upper are
// the same element. ok is false when the tracker is empty.
func (t *Tracker[T]) Median() (lower, upper T, ok bool) {
	lower, ok = t.low.Peek()
	if !ok {
		return lower, upper, false
	}
	if t.low.Len() > t.high.Len() {
		return lower, lower, true
	}
	upper, _ = t.high.Peek()
	return lower, upper, true
}

func (t *Tracker[T]) Len() int { return t.low.Len() + t.high.Len() }

func (t *Tracker[T]) IsEmpty() bool { return t.low.IsEmpty() }

// Number is the set of types Mean can average.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mean returns the arithmetic mean of the two middle values.
func Mean[T Number](t *Tracker[T]) (float64, bool) {
	lo, hi, ok := t.Median()
	if !ok {
		return 0, false
	}
	return (float64(lo) + float64(hi)) / 2, true
}
