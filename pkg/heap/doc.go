// Package heap provides a generic, array-backed binary heap.
//
// The heap is parameterised by an order.Func captured at construction. The
// element for which the predicate reports priority over every other element
// is kept at the root:
//
//	minHeap := heap.New(order.Less[int])
//	maxHeap := heap.NewFrom([]int{3, 1, 4, 1, 5}, order.Greater[int])
//
//	maxHeap.Insert(9)
//	top, ok := maxHeap.Peek()       // 9, true
//	top, ok = maxHeap.RemoveRoot()  // 9, true
//
// # Layout
//
// Elements live in a 0-indexed slice. The children of index i are 2i+1 and
// 2i+2 and its parent is (i-1)/2. NewFrom builds the heap bottom-up in O(n);
// Insert, RemoveRoot, Remove and Replace run in O(log n).
//
// # Absent results
//
// Operations on an empty heap and out-of-range indices never panic. They
// return the zero value together with false, or false alone for Replace.
// The only panics are construction-time misuse: a nil order function or a
// non-positive TopK size.
//
// # Extras
//
// Sort is a heap sort over a copy of its input. TopK keeps the k
// highest-priority values seen in a stream using a heap whose root is the
// weakest retained value.
//
// Heaps are not safe for concurrent use; callers serialize access.
package heap
