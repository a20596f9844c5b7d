// Package order defines the ordering predicate shared by every container in
// this module and a handful of ready-made orderings.
//
// An order.Func[T] answers a single question: does a have priority over b?
// Heaps put the value with the highest priority at the root, so order.Less
// yields a min-heap and order.Greater a max-heap.
//
//	h := heap.New(order.Greater[int])          // max-heap
//	q := pqueue.New(order.By(taskDeadline, order.Less[int64]))
//	names := heap.Sort(in, order.Collated(language.German))
//
// The predicate is captured once by a container and never replaced.
package order
