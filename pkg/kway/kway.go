// Package kway merges sorted sequences through a priority queue.
//
// Each input must already be sorted under the same order.Func used for the
// merge. The queue holds at most one cursor per input, so merging N values
// from K inputs costs O(N log K) time and O(K) extra space.
//
//	out := kway.MergeSorted([][]int{
//		{1, 2, 6, 15},
//		{7, 8, 9},
//		{},
//		{5, 10},
//	}, order.Less[int])
//	// [1 2 5 6 7 8 9 10 15]
package kway

import (
	"iter"

	"github.com/dmitrymomot/collections/pkg/heap"
	"github.com/dmitrymomot/collections/pkg/order"
	"github.com/dmitrymomot/collections/pkg/pqueue"
)

// cursor points at the next unmerged value of one input.
type cursor[T any] struct {
	value  T
	source int
	pos    int
}

// cursorOrder ranks cursors by value, breaking ties by source index so
// equal values keep the order of their inputs.
func cursorOrder[T any](fn order.Func[T]) order.Func[cursor[T]] {
	return func(a, b cursor[T]) bool {
		if fn(a.value, b.value) {
			return true
		}
		if fn(b.value, a.value) {
			return false
		}
		return a.source < b.source
	}
}

// MergeSorted merges the sorted slices in seqs into one sorted slice.
// Empty inputs contribute nothing. The inputs are not modified.
// It panics with heap.ErrNilOrder if fn is nil.
func MergeSorted[T any](seqs [][]T, fn order.Func[T]) []T {
	if fn == nil {
		panic(heap.ErrNilOrder)
	}
	total := 0
	seed := make([]cursor[T], 0, len(seqs))
	for i, s := range seqs {
		total += len(s)
		if len(s) > 0 {
			seed = append(seed, cursor[T]{value: s[0], source: i})
		}
	}

	q := pqueue.NewFrom(seed, cursorOrder(fn))
	out := make([]T, 0, total)
	for {
		c, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, c.value)
		if next := c.pos + 1; next < len(seqs[c.source]) {
			q.Enqueue(cursor[T]{value: seqs[c.source][next], source: c.source, pos: next})
		}
	}
}

// Merge lazily merges sorted iterators into one sorted iterator.
// Inputs are pulled on demand and released when the returned
// iterator finishes or the consumer stops early.
// It panics with heap.ErrNilOrder if fn is nil.
func Merge[T any](fn order.Func[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	if fn == nil {
		panic(heap.ErrNilOrder)
	}
	return func(yield func(T) bool) {
		nexts := make([]func() (T, bool), len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			defer stop()
			nexts[i] = next
		}

		q := pqueue.New(cursorOrder(fn))
		for i, next := range nexts {
			if v, ok := next(); ok {
				q.Enqueue(cursor[T]{value: v, source: i})
			}
		}

		for {
			c, ok := q.Dequeue()
			if !ok {
				return
			}
			if !yield(c.value) {
				return
			}
			if v, ok := nexts[c.source](); ok {
				q.Enqueue(cursor[T]{value: v, source: c.source, pos: c.pos + 1})
			}
		}
	}
}
