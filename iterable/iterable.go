package iterable

import (
	"github.com/rizo/proto/compare"
	"github.com/rizo/proto/iter"
)

// Base is the minimal traversal adapter a container type supplies: an
// initial traversal state and a step function over it. C is the
// container type, S the (otherwise hidden) state type, T the element
// type.
//
// Step must invoke exactly one continuation — onItem with the next
// element and successor state, or onEnd — and must reach onEnd after
// finitely many steps. Base functions must not rely on shared mutable
// state; that contract is what makes independent simultaneous
// traversals of one container safe.
type Base[C, S, T any] struct {
	Init func(c C) S
	Step func(c C, state S, onItem func(item T, next S), onEnd func())
}

// Iter wraps one traversal of c into an [iter.Iter].
func (b Base[C, S, T]) Iter(c C) iter.Iter[T] {
	return iter.New(b.Init(c), func(s S, onItem func(T, S), onEnd func()) {
		b.Step(c, s, onItem, onEnd)
	})
}

// Iterable exposes the full algorithm suite of the iter package as
// operations of a single container type, derived mechanically from its
// [Base] adapter.
//
// Define one per container type and share it:
//
//	var lists = iterable.Derive(listBase)
//	...
//	n := lists.Length(l)
//	evens := lists.Count(l, func(n int) bool { return n%2 == 0 })
//
// Operations whose result or accumulator type is independent of the
// element type cannot be methods (Go methods introduce no type
// parameters); those are the package-level functions [Fold],
// [FoldWhile], and the constrained value-based forms [Contains],
// [Index], [Indices], [Sum], [Product], [FindMin], [FindMax].
type Iterable[C, S, T any] struct {
	base Base[C, S, T]
}

// Derive builds the operation suite for the container type described
// by base.
func Derive[C, S, T any](base Base[C, S, T]) Iterable[C, S, T] {
	return Iterable[C, S, T]{base: base}
}

// Iter starts a fresh traversal of c.
func (d Iterable[C, S, T]) Iter(c C) iter.Iter[T] { return d.base.Iter(c) }

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & folding
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn on every element of c in traversal order.
func (d Iterable[C, S, T]) Each(c C, fn func(T)) { iter.Each(d.Iter(c), fn) }

// Fold threads a T-typed accumulator through c from left to right.
// For a free accumulator type use the package-level [Fold].
func (d Iterable[C, S, T]) Fold(c C, seed T, fn func(acc, item T) T) T {
	return iter.Fold(d.Iter(c), seed, fn)
}

// Reduce folds c using its first element as the seed.
func (d Iterable[C, S, T]) Reduce(c C, fn func(acc, item T) T) (T, bool) {
	return iter.Reduce(d.Iter(c), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element of c satisfying pred.
func (d Iterable[C, S, T]) Find(c C, pred func(T) bool) (T, bool) {
	return iter.Find(d.Iter(c), pred)
}

// FindIndex returns the position of the first element satisfying pred.
func (d Iterable[C, S, T]) FindIndex(c C, pred func(T) bool) (int, bool) {
	return iter.FindIndex(d.Iter(c), pred)
}

// FindIndices returns the positions of all elements satisfying pred.
func (d Iterable[C, S, T]) FindIndices(c C, pred func(T) bool) []int {
	return iter.FindIndices(d.Iter(c), pred)
}

// IndexBy returns the position of the first element equal to x under eq.
func (d Iterable[C, S, T]) IndexBy(c C, x T, eq compare.Equality[T]) (int, bool) {
	return iter.IndexBy(d.Iter(c), x, eq)
}

// IndicesBy returns the positions of all elements equal to x under eq.
func (d Iterable[C, S, T]) IndicesBy(c C, x T, eq compare.Equality[T]) []int {
	return iter.IndicesBy(d.Iter(c), x, eq)
}

// ContainsBy reports whether any element of c satisfies pred.
func (d Iterable[C, S, T]) ContainsBy(c C, pred func(T) bool) bool {
	return iter.ContainsBy(d.Iter(c), pred)
}

// FindMinBy returns the smallest element of c under cmp, keeping the
// earliest on ties.
func (d Iterable[C, S, T]) FindMinBy(c C, cmp compare.Func[T]) (T, bool) {
	return iter.FindMinBy(d.Iter(c), cmp)
}

// FindMaxBy returns the largest element of c under cmp, keeping the
// earliest on ties.
func (d Iterable[C, S, T]) FindMaxBy(c C, cmp compare.Func[T]) (T, bool) {
	return iter.FindMaxBy(d.Iter(c), cmp)
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements of c satisfying pred.
func (d Iterable[C, S, T]) Count(c C, pred func(T) bool) int {
	return iter.Count(d.Iter(c), pred)
}

// All reports whether every element of c satisfies pred.
func (d Iterable[C, S, T]) All(c C, pred func(T) bool) bool {
	return iter.All(d.Iter(c), pred)
}

// Any reports whether at least one element of c satisfies pred.
func (d Iterable[C, S, T]) Any(c C, pred func(T) bool) bool {
	return iter.Any(d.Iter(c), pred)
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialisation & positional access
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice materialises c into a slice preserving traversal order.
func (d Iterable[C, S, T]) ToSlice(c C) []T { return iter.ToSlice(d.Iter(c)) }

// ToSliceReversed materialises c into a slice in reverse traversal order.
func (d Iterable[C, S, T]) ToSliceReversed(c C) []T { return iter.ToSliceReversed(d.Iter(c)) }

// IsEmpty probes a single step of c.
func (d Iterable[C, S, T]) IsEmpty(c C) bool { return iter.IsEmpty(d.Iter(c)) }

// Length counts the elements of c with a full traversal.
func (d Iterable[C, S, T]) Length(c C) int { return iter.Length(d.Iter(c)) }

// Get returns the element at position n, scanning only as far as n.
func (d Iterable[C, S, T]) Get(c C, n int) (T, bool) { return iter.Get(d.Iter(c), n) }

// First returns the first element of c.
func (d Iterable[C, S, T]) First(c C) (T, bool) { return iter.First(d.Iter(c)) }

// Second returns the second element of c.
func (d Iterable[C, S, T]) Second(c C) (T, bool) { return iter.Second(d.Iter(c)) }

// Last returns the final element of c.
func (d Iterable[C, S, T]) Last(c C) (T, bool) { return iter.Last(d.Iter(c)) }
