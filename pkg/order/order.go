package order

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func reports whether a has priority over b.
// It must describe a total preorder; inconsistent predicates leave the
// containers built on top of it in an undefined state.
type Func[T any] func(a, b T) bool

// Less orders values ascending. Heaps built with it are min-heaps.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Greater orders values descending. Heaps built with it are max-heaps.
func Greater[T constraints.Ordered](a, b T) bool { return a > b }

// Reverse flips the priority described by f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) bool { return f(b, a) }
}

// By orders values by a derived key.
//
//	byAge := order.By(func(u User) int { return u.Age }, order.Less[int])
func By[T, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) bool { return f(key(a), key(b)) }
}

// Equivalent reports whether neither a nor b has priority over the other.
func Equivalent[T any](f Func[T], a, b T) bool {
	return !f(a, b) && !f(b, a)
}

// Collated orders strings ascending using the collation rules of tag.
// The returned predicate shares one collator and must not be used
// from several goroutines at once.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}
