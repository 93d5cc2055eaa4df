package iter

import (
	"golang.org/x/exp/constraints"

	"github.com/rizo/proto/compare"
)

// Number is the element constraint for the arithmetic aggregations
// [Sum] and [Product].
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & folding
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn on every element of src in order. There is no early
// exit; use [FoldWhile] or [Find] when one is needed.
func Each[T any](src Iter[T], fn func(T)) {
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		fn(item)
	}
}

// Fold threads an accumulator through src from left to right:
//
//	total := iter.Fold(src, 0, func(acc, n int) int { return acc + n })
func Fold[T, A any](src Iter[T], seed A, fn func(acc A, item T) A) A {
	acc := seed
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		acc = fn(acc, item)
	}
	return acc
}

// Step is the verdict returned by a [FoldWhile] callback: carry on with
// an updated accumulator, or stop and keep the one given.
type Step[A any] struct {
	acc  A
	stop bool
}

// Continue resumes the fold with acc.
func Continue[A any](acc A) Step[A] { return Step[A]{acc: acc} }

// Stop halts the fold immediately; acc becomes the final result.
func Stop[A any](acc A) Step[A] { return Step[A]{acc: acc, stop: true} }

// FoldWhile is a left fold with early exit. Traversal halts the moment
// fn returns [Stop]; elements after that point are never visited.
//
//	sum := iter.FoldWhile(src, 0, func(acc, n int) iter.Step[int] {
//	    if n > 3 {
//	        return iter.Stop(acc)
//	    }
//	    return iter.Continue(acc + n)
//	})
func FoldWhile[T, A any](src Iter[T], seed A, fn func(acc A, item T) Step[A]) A {
	acc := seed
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		step := fn(acc, item)
		acc = step.acc
		if step.stop {
			break
		}
	}
	return acc
}

// Reduce folds src using its first element as the seed.
// Returns the zero value and false when src is empty.
func Reduce[T any](src Iter[T], fn func(acc, item T) T) (T, bool) {
	first, rest, ok := src.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return Fold(rest, first, fn), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying pred, stopping the traversal
// at the match. Returns the zero value and false when nothing matches.
func Find[T any](src Iter[T], pred func(T) bool) (T, bool) {
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindOrFail is [Find] returning [ErrNoMatch] instead of a false flag.
func FindOrFail[T any](src Iter[T], pred func(T) bool) (T, error) {
	item, ok := Find(src, pred)
	if !ok {
		return item, ErrNoMatch
	}
	return item, nil
}

// FindIndex returns the zero-based position of the first element
// satisfying pred, stopping at the match.
func FindIndex[T any](src Iter[T], pred func(T) bool) (int, bool) {
	i := 0
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		if pred(item) {
			return i, true
		}
		i++
	}
	return 0, false
}

// FindIndices returns the positions of every element satisfying pred,
// in ascending order. The whole source is visited.
func FindIndices[T any](src Iter[T], pred func(T) bool) []int {
	var out []int
	i := 0
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		if pred(item) {
			out = append(out, i)
		}
		i++
	}
	return out
}

// Index returns the position of the first element equal to x under the
// default structural equality ([compare.Equal]).
func Index[T comparable](src Iter[T], x T) (int, bool) {
	return IndexBy(src, x, compare.Equal[T])
}

// IndexBy is [Index] with an explicit equality.
func IndexBy[T any](src Iter[T], x T, eq compare.Equality[T]) (int, bool) {
	return FindIndex(src, func(item T) bool { return eq(item, x) })
}

// Indices returns the positions of every element equal to x under the
// default structural equality.
func Indices[T comparable](src Iter[T], x T) []int {
	return IndicesBy(src, x, compare.Equal[T])
}

// IndicesBy is [Indices] with an explicit equality.
func IndicesBy[T any](src Iter[T], x T, eq compare.Equality[T]) []int {
	return FindIndices(src, func(item T) bool { return eq(item, x) })
}

// Contains reports whether src produces an element equal to x. It uses
// the same default equality as [Index] and [Indices] ([compare.Equal])
// and stops at the first match.
func Contains[T comparable](src Iter[T], x T) bool {
	_, ok := Find(src, func(item T) bool { return compare.Equal(item, x) })
	return ok
}

// ContainsBy reports whether any element satisfies pred, stopping at the
// first match. It is equivalent to [Any].
func ContainsBy[T any](src Iter[T], pred func(T) bool) bool {
	_, ok := Find(src, pred)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Extrema
// ─────────────────────────────────────────────────────────────────────────────

// FindMin returns the smallest element under the natural ordering
// ([compare.Natural]). Returns the zero value and false on an empty
// source. On ties the earliest element is kept.
func FindMin[T constraints.Ordered](src Iter[T]) (T, bool) {
	return FindMinBy(src, compare.Natural[T])
}

// FindMinBy is [FindMin] with an explicit comparator. An element
// replaces the current minimum only on a strict improvement, so the
// earliest of equivalent elements wins.
func FindMinBy[T any](src Iter[T], cmp compare.Func[T]) (T, bool) {
	return Reduce(src, func(best, item T) T {
		if cmp(item, best) < 0 {
			return item
		}
		return best
	})
}

// FindMax returns the largest element under the natural ordering.
// Returns the zero value and false on an empty source. On ties the
// earliest element is kept.
func FindMax[T constraints.Ordered](src Iter[T]) (T, bool) {
	return FindMaxBy(src, compare.Natural[T])
}

// FindMaxBy is [FindMax] with an explicit comparator.
func FindMaxBy[T any](src Iter[T], cmp compare.Func[T]) (T, bool) {
	return Reduce(src, func(best, item T) T {
		if cmp(item, best) > 0 {
			return item
		}
		return best
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements satisfying pred.
func Count[T any](src Iter[T], pred func(T) bool) int {
	return Fold(src, 0, func(acc int, item T) int {
		if pred(item) {
			acc++
		}
		return acc
	})
}

// Sum returns the sum of all elements, 0 for an empty source.
// Overflow follows the rules of T.
func Sum[T Number](src Iter[T]) T {
	return Fold(src, T(0), func(acc, item T) T { return acc + item })
}

// Product returns the product of all elements, 1 for an empty source.
//
// A zero element makes the result 0 immediately: traversal stops there
// and later elements are never visited. This is an algebraic
// short-circuit, not just a fast path — side effects attached to
// elements after a zero must not fire.
func Product[T Number](src Iter[T]) T {
	return FoldWhile(src, T(1), func(acc, item T) Step[T] {
		if item == 0 {
			return Stop(T(0))
		}
		return Continue(acc * item)
	})
}

// All reports whether every element satisfies pred, stopping at the
// first that does not. Vacuously true on an empty source.
func All[T any](src Iter[T], pred func(T) bool) bool {
	_, found := Find(src, func(item T) bool { return !pred(item) })
	return !found
}

// Any reports whether at least one element satisfies pred, stopping at
// the first that does. False on an empty source.
func Any[T any](src Iter[T], pred func(T) bool) bool {
	_, found := Find(src, pred)
	return found
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialisation & positional access
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice materialises src into a slice preserving source order.
func ToSlice[T any](src Iter[T]) []T {
	var out []T
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		out = append(out, item)
	}
	return out
}

// ToSliceReversed materialises src into a slice in reverse source order.
func ToSliceReversed[T any](src Iter[T]) []T {
	out := ToSlice(src)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IsEmpty reports whether the first step of src signals exhaustion.
// At most one element is produced.
func IsEmpty[T any](src Iter[T]) bool {
	_, _, ok := src.Next()
	return !ok
}

// Length counts the elements of src with a full traversal.
func Length[T any](src Iter[T]) int {
	return Fold(src, 0, func(acc int, _ T) int { return acc + 1 })
}

// Get returns the element at position n by scanning forward, stopping
// as soon as the position is reached. Returns the zero value and false
// when n is negative or past the end.
func Get[T any](src Iter[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
		if n == 0 {
			return item, true
		}
		n--
	}
	return zero, false
}

// GetOrFail is [Get] returning [ErrOutOfRange] instead of a false flag.
func GetOrFail[T any](src Iter[T], n int) (T, error) {
	item, ok := Get(src, n)
	if !ok {
		return item, ErrOutOfRange
	}
	return item, nil
}

// First returns the first element of src.
func First[T any](src Iter[T]) (T, bool) { return Get(src, 0) }

// Second returns the second element of src.
func Second[T any](src Iter[T]) (T, bool) { return Get(src, 1) }

// Last returns the final element of src by folding to the most recently
// seen one. Returns the zero value and false on an empty source.
func Last[T any](src Iter[T]) (T, bool) {
	return Reduce(src, func(_, item T) T { return item })
}
