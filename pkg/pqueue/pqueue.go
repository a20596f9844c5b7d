// Package pqueue provides a priority queue backed by a binary heap.
//
// PriorityQueue adds no state of its own: every method delegates to the
// underlying heap.Heap, so the queue inherits its ordering, complexity and
// absent-result semantics.
//
//	q := pqueue.New(order.Less[int])
//	q.Enqueue(3)
//	q.Enqueue(1)
//	v, ok := q.Dequeue() // 1, true
package pqueue

import (
	"github.com/dmitrymomot/collections/pkg/heap"
	"github.com/dmitrymomot/collections/pkg/order"
)

// PriorityQueue dequeues values in priority order.
// It is not safe for concurrent use.
type PriorityQueue[T any] struct {
	heap *heap.Heap[T]
}

// New creates an empty queue ordered by fn.
func New[T any](fn order.Func[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: heap.New(fn)}
}

// NewFrom creates a queue holding a copy of seed, built in O(n).
func NewFrom[T any](seed []T, fn order.Func[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: heap.NewFrom(seed, fn)}
}

func (q *PriorityQueue[T]) Enqueue(v T) { q.heap.Insert(v) }

// Dequeue removes and returns the highest-priority value.
func (q *PriorityQueue[T]) Dequeue() (T, bool) { return q.heap.RemoveRoot() }

// Peek returns the highest-priority value without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) { return q.heap.Peek() }

// ChangePriority replaces the value stored at heap index i with v.
// It reports false when i is out of range.
func (q *PriorityQueue[T]) ChangePriority(i int, v T) bool { return q.heap.Replace(i, v) }

func (q *PriorityQueue[T]) Len() int { return q.heap.Len() }

func (q *PriorityQueue[T]) IsEmpty() bool { return q.heap.IsEmpty() }

// Values returns a copy of the queued values in heap order. The index of a
// value in this slice is the index ChangePriority expects.
func (q *PriorityQueue[T]) Values() []T { return q.heap.Values() }

func (q *PriorityQueue[T]) String() string { return q.heap.String() }
