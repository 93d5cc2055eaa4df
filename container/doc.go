// Package container derives uniform positional access (Len, IsEmpty,
// Get, First, Second, Last) for container types, selecting the cheapest
// correct strategy for the capability each container declares.
//
// A container with true random access supplies an [Indexable] adapter
// (length plus validated-index accessor) and gets O(1) derivations. A
// container that can only be walked supplies its traversal adapter
// through [FromBase] and gets scanning fallbacks: a full-count Len, an
// early-terminating Get, a single-step IsEmpty probe and a folding
// Last.
//
// Callers see identical names and signatures regardless of the backing
// capability; a container pays only the asymptotic cost its true
// backing structure allows. Each concrete container type declares
// exactly one of the two — never both.
package container
