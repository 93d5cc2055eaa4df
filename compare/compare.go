package compare

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Func is a three-way comparator: negative when a orders before b, zero
// when the two are equivalent, positive when a orders after b.
type Func[T any] func(a, b T) int

// Equality reports whether two values are considered equal.
type Equality[T any] func(a, b T) bool

// ─────────────────────────────────────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────────────────────────────────────

// Natural is the default comparator: the natural ordering of any ordered
// type, with NaN ordered before every other float value.
//
// Pass it wherever a [Func] is expected:
//
//	smallest, ok := iter.FindMinBy(src, compare.Natural[int])
func Natural[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Equal is the default equality: structural equality via ==.
//
// It is the single equality policy used by the traversal library's
// value-based lookups (Contains, Index, Indices).
func Equal[T comparable](a, b T) bool {
	return a == b
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a comparator that orders in the opposite direction of fn.
func Reverse[T any](fn Func[T]) Func[T] {
	return func(a, b T) int { return fn(b, a) }
}

// By builds a comparator for T from a key-extraction function and a
// comparator on the key type:
//
//	byAge := compare.By(func(u User) int { return u.Age }, compare.Natural[int])
func By[T any, K any](key func(T) K, fn Func[K]) Func[T] {
	return func(a, b T) int { return fn(key(a), key(b)) }
}

// EqualBy builds an equality for T from a key-extraction function.
func EqualBy[T any, K comparable](key func(T) K) Equality[T] {
	return func(a, b T) bool { return key(a) == key(b) }
}
