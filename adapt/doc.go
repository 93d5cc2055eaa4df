// Package adapt provides ready-made traversal and random-access
// adapters connecting common container types — built-in slices and
// strings, generic linked lists, insertion-ordered maps and bit sets —
// to the derivation layers in the iterable and container packages.
//
// Indexable containers (slices, strings, byte buffers) get the O(1)
// positional derivations; sequential containers (linked lists, ordered
// maps, bit sets) get the full derived operation suite plus the
// scanning positional fallbacks:
//
//	l := list.New[int]()
//	l.PushBack(3)
//	l.PushBack(7)
//
//	ints := adapt.List[int]()
//	iterable.Sum(ints, l)        // 10
//	ints.Last(l)                 // 7, true
package adapt
