package container

import (
	"github.com/rizo/proto/iter"
	"github.com/rizo/proto/iterable"
)

// Indexable derives positional access for container types with true
// random access. The adapter supplies the container's length and an
// unchecked accessor; UnsafeGet is only ever called with an index
// already validated against Length, so implementations may skip bounds
// checks.
//
// Every derived operation is O(1) given O(1) adapter functions.
type Indexable[C, T any] struct {
	Length    func(c C) int
	UnsafeGet func(c C, i int) T
}

// Len returns the number of elements in c.
func (ix Indexable[C, T]) Len(c C) int { return ix.Length(c) }

// IsEmpty reports whether c has no elements.
func (ix Indexable[C, T]) IsEmpty(c C) bool { return ix.Length(c) == 0 }

// Get returns the element at position n after validating n against the
// container's length. Returns the zero value and false out of range.
func (ix Indexable[C, T]) Get(c C, n int) (T, bool) {
	if n < 0 || n >= ix.Length(c) {
		var zero T
		return zero, false
	}
	return ix.UnsafeGet(c, n), true
}

// First returns the element at position 0.
func (ix Indexable[C, T]) First(c C) (T, bool) { return ix.Get(c, 0) }

// Second returns the element at position 1.
func (ix Indexable[C, T]) Second(c C) (T, bool) { return ix.Get(c, 1) }

// Last returns the element at the final position.
func (ix Indexable[C, T]) Last(c C) (T, bool) { return ix.Get(c, ix.Length(c)-1) }

// Iter starts a traversal of c in index order.
func (ix Indexable[C, T]) Iter(c C) iter.Iter[T] {
	return iter.New(0, func(i int, onItem func(T, int), onEnd func()) {
		if i >= ix.Length(c) {
			onEnd()
			return
		}
		onItem(ix.UnsafeGet(c, i), i+1)
	})
}

// Sequential derives positional access for container types that only
// support sequential traversal, falling back to the cheapest scanning
// strategy each operation allows: Len is a full count, Get scans no
// further than the requested position, IsEmpty probes a single step,
// and Last folds to the most recently seen element.
//
// A container type declares exactly one of the two capabilities; the
// operation names and signatures are identical either way, so callers
// never notice which derivation backs them.
type Sequential[C, S, T any] struct {
	base iterable.Base[C, S, T]
}

// FromBase derives sequential positional access from a traversal
// adapter.
func FromBase[C, S, T any](base iterable.Base[C, S, T]) Sequential[C, S, T] {
	return Sequential[C, S, T]{base: base}
}

// Len counts the elements of c with a full traversal.
func (sq Sequential[C, S, T]) Len(c C) int { return iter.Length(sq.base.Iter(c)) }

// IsEmpty probes a single step of c.
func (sq Sequential[C, S, T]) IsEmpty(c C) bool { return iter.IsEmpty(sq.base.Iter(c)) }

// Get scans to position n, stopping as soon as it is reached.
// Returns the zero value and false out of range.
func (sq Sequential[C, S, T]) Get(c C, n int) (T, bool) { return iter.Get(sq.base.Iter(c), n) }

// First returns the first element of c.
func (sq Sequential[C, S, T]) First(c C) (T, bool) { return iter.First(sq.base.Iter(c)) }

// Second returns the second element of c.
func (sq Sequential[C, S, T]) Second(c C) (T, bool) { return iter.Second(sq.base.Iter(c)) }

// Last folds c to its most recently seen element.
func (sq Sequential[C, S, T]) Last(c C) (T, bool) { return iter.Last(sq.base.Iter(c)) }

// Iter starts a traversal of c.
func (sq Sequential[C, S, T]) Iter(c C) iter.Iter[T] { return sq.base.Iter(c) }
