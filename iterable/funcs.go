package iterable

// This file contains the package-level halves of the derived operation
// suite: operations that need a type parameter a method cannot
// introduce — a free accumulator type, or a constraint on the element
// type (comparable for value-based lookups, iter.Number for the
// arithmetic aggregations, constraints.Ordered for extrema).

import (
	"golang.org/x/exp/constraints"

	"github.com/rizo/proto/iter"
)

// Fold threads an accumulator of any type through c from left to right.
//
//	csv := iterable.Fold(lists, l, "", func(acc string, n int) string {
//	    return acc + strconv.Itoa(n)
//	})
func Fold[C, S, T, A any](d Iterable[C, S, T], c C, seed A, fn func(acc A, item T) A) A {
	return iter.Fold(d.Iter(c), seed, fn)
}

// FoldWhile is [Fold] with early exit through [iter.Stop].
func FoldWhile[C, S, T, A any](d Iterable[C, S, T], c C, seed A, fn func(acc A, item T) iter.Step[A]) A {
	return iter.FoldWhile(d.Iter(c), seed, fn)
}

// Contains reports whether c produces an element equal to x under the
// default structural equality.
func Contains[C, S any, T comparable](d Iterable[C, S, T], c C, x T) bool {
	return iter.Contains(d.Iter(c), x)
}

// Index returns the position of the first element of c equal to x under
// the default structural equality.
func Index[C, S any, T comparable](d Iterable[C, S, T], c C, x T) (int, bool) {
	return iter.Index(d.Iter(c), x)
}

// Indices returns the positions of all elements of c equal to x under
// the default structural equality.
func Indices[C, S any, T comparable](d Iterable[C, S, T], c C, x T) []int {
	return iter.Indices(d.Iter(c), x)
}

// Sum returns the sum of the elements of c, 0 when empty.
func Sum[C, S any, T iter.Number](d Iterable[C, S, T], c C) T {
	return iter.Sum(d.Iter(c))
}

// Product returns the product of the elements of c, 1 when empty,
// short-circuiting to 0 on the first zero element.
func Product[C, S any, T iter.Number](d Iterable[C, S, T], c C) T {
	return iter.Product(d.Iter(c))
}

// FindMin returns the smallest element of c under the natural ordering.
func FindMin[C, S any, T constraints.Ordered](d Iterable[C, S, T], c C) (T, bool) {
	return iter.FindMin(d.Iter(c))
}

// FindMax returns the largest element of c under the natural ordering.
func FindMax[C, S any, T constraints.Ordered](d Iterable[C, S, T], c C) (T, bool) {
	return iter.FindMax(d.Iter(c))
}
