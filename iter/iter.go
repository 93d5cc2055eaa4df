package iter

// Iter is a lazy, pull-based producer of values of type T.
//
// Calling an Iter performs exactly one traversal step: it invokes exactly
// one of the two continuations, either onItem with the next element and
// the successor Iter, or onEnd when the source is exhausted. The
// traversal state is hidden inside the closure; consumers never see it.
//
// An Iter is an immutable, ephemeral value. It holds no external
// resources, and a fresh one can be constructed from the same source and
// traversed independently any number of times. Every operation in this
// package consumes its source in a single forward pass and never retains
// it afterwards.
//
// # Driving an Iter by hand
//
//	src := iter.FromSlice([]int{1, 2, 3})
//	for item, next, ok := src.Next(); ok; item, next, ok = next.Next() {
//	    fmt.Println(item)
//	    _ = item
//	}
type Iter[T any] func(onItem func(item T, next Iter[T]), onEnd func())

// Next performs one step, wrapping the two continuations into Go's
// conventional presence-flag shape. It returns the next element, the
// successor Iter, and true; or the zero values and false on exhaustion.
func (it Iter[T]) Next() (T, Iter[T], bool) {
	var (
		item T
		next Iter[T]
		ok   bool
	)
	it(func(v T, n Iter[T]) {
		item, next, ok = v, n, true
	}, func() {})
	return item, next, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New builds an Iter from an initial state and a step function.
//
// step must invoke exactly one of its continuations: onItem with the next
// element and the successor state, or onEnd on exhaustion. For any finite
// source, repeated stepping must reach onEnd. The state threading is what
// makes the resulting Iter re-steppable: calling the same Iter value
// twice performs the same step twice.
func New[S, T any](state S, step func(state S, onItem func(item T, next S), onEnd func())) Iter[T] {
	return func(onItem func(T, Iter[T]), onEnd func()) {
		step(state, func(item T, next S) {
			onItem(item, New(next, step))
		}, onEnd)
	}
}

// Empty returns an Iter that is immediately exhausted.
func Empty[T any]() Iter[T] {
	return func(_ func(T, Iter[T]), onEnd func()) { onEnd() }
}

// Single returns an Iter producing exactly one element.
func Single[T any](item T) Iter[T] {
	return func(onItem func(T, Iter[T]), _ func()) { onItem(item, Empty[T]()) }
}

// FromSlice returns an Iter over the elements of items in order.
// The slice is not copied; it must not be mutated during traversal.
func FromSlice[T any](items []T) Iter[T] {
	return New(0, func(i int, onItem func(T, int), onEnd func()) {
		if i >= len(items) {
			onEnd()
			return
		}
		onItem(items[i], i+1)
	})
}

// Range returns an Iter over the integers in the half-open interval
// [start, stop). It is empty when start >= stop.
func Range(start, stop int) Iter[int] {
	return New(start, func(i int, onItem func(int, int), onEnd func()) {
		if i >= stop {
			onEnd()
			return
		}
		onItem(i, i+1)
	})
}
