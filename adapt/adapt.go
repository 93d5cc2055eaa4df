package adapt

import (
	list "github.com/bahlo/generic-list-go"
	"github.com/bits-and-blooms/bitset"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rizo/proto/container"
	"github.com/rizo/proto/iterable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Built-in sequences (indexable)
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the random-access derivation for []T.
func Slice[T any]() container.Indexable[[]T, T] {
	return container.Indexable[[]T, T]{
		Length:    func(s []T) int { return len(s) },
		UnsafeGet: func(s []T, i int) T { return s[i] },
	}
}

// SliceBase returns the traversal adapter for []T, for consumers that
// want the full derived operation suite:
//
//	ints := iterable.Derive(adapt.SliceBase[int]())
//	total := iterable.Sum(ints, []int{1, 2, 3})
func SliceBase[T any]() iterable.Base[[]T, int, T] {
	return iterable.Base[[]T, int, T]{
		Init: func([]T) int { return 0 },
		Step: func(s []T, i int, onItem func(T, int), onEnd func()) {
			if i >= len(s) {
				onEnd()
				return
			}
			onItem(s[i], i+1)
		},
	}
}

// String is the random-access derivation for the bytes of a string.
// The element type is fixed to byte; this is the monomorphised
// counterpart of the parametric slice adapters.
var String = container.Indexable[string, byte]{
	Length:    func(s string) int { return len(s) },
	UnsafeGet: func(s string, i int) byte { return s[i] },
}

// Bytes is the random-access derivation for []byte.
var Bytes = container.Indexable[[]byte, byte]{
	Length:    func(b []byte) int { return len(b) },
	UnsafeGet: func(b []byte, i int) byte { return b[i] },
}

// ─────────────────────────────────────────────────────────────────────────────
// Linked list (iterable-only)
// ─────────────────────────────────────────────────────────────────────────────

// ListBase returns the traversal adapter for a generic doubly linked
// list (github.com/bahlo/generic-list-go). The traversal state is the
// current element; lists have no random access, so only the sequential
// derivations apply.
func ListBase[T any]() iterable.Base[*list.List[T], *list.Element[T], T] {
	return iterable.Base[*list.List[T], *list.Element[T], T]{
		Init: func(l *list.List[T]) *list.Element[T] { return l.Front() },
		Step: func(_ *list.List[T], e *list.Element[T], onItem func(T, *list.Element[T]), onEnd func()) {
			if e == nil {
				onEnd()
				return
			}
			onItem(e.Value, e.Next())
		},
	}
}

// List returns the derived operation suite for a generic linked list.
func List[T any]() iterable.Iterable[*list.List[T], *list.Element[T], T] {
	return iterable.Derive(ListBase[T]())
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordered map (iterable-only)
// ─────────────────────────────────────────────────────────────────────────────

// Entry is the element produced when traversing an ordered map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMapBase returns the traversal adapter for an insertion-ordered
// map (github.com/wk8/go-ordered-map), walking entries oldest first.
func OrderedMapBase[K comparable, V any]() iterable.Base[*orderedmap.OrderedMap[K, V], *orderedmap.Pair[K, V], Entry[K, V]] {
	return iterable.Base[*orderedmap.OrderedMap[K, V], *orderedmap.Pair[K, V], Entry[K, V]]{
		Init: func(m *orderedmap.OrderedMap[K, V]) *orderedmap.Pair[K, V] { return m.Oldest() },
		Step: func(_ *orderedmap.OrderedMap[K, V], p *orderedmap.Pair[K, V], onItem func(Entry[K, V], *orderedmap.Pair[K, V]), onEnd func()) {
			if p == nil {
				onEnd()
				return
			}
			onItem(Entry[K, V]{Key: p.Key, Value: p.Value}, p.Next())
		},
	}
}

// OrderedMap returns the derived operation suite for an ordered map.
func OrderedMap[K comparable, V any]() iterable.Iterable[*orderedmap.OrderedMap[K, V], *orderedmap.Pair[K, V], Entry[K, V]] {
	return iterable.Derive(OrderedMapBase[K, V]())
}

// ─────────────────────────────────────────────────────────────────────────────
// Bit set (iterable-only)
// ─────────────────────────────────────────────────────────────────────────────

// BitSetBase returns the traversal adapter over the set bit positions
// of a github.com/bits-and-blooms/bitset value, ascending. The state is
// the next position to search from.
func BitSetBase() iterable.Base[*bitset.BitSet, uint, uint] {
	return iterable.Base[*bitset.BitSet, uint, uint]{
		Init: func(*bitset.BitSet) uint { return 0 },
		Step: func(b *bitset.BitSet, from uint, onItem func(uint, uint), onEnd func()) {
			pos, ok := b.NextSet(from)
			if !ok {
				onEnd()
				return
			}
			onItem(pos, pos+1)
		},
	}
}

// BitSet is the derived operation suite over set bit positions.
var BitSet = iterable.Derive(BitSetBase())
