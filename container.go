// Package assoctables holds a set of generic associative containers: an open addressing hash table,
// a separately chained hash table, an AVL tree, a red-black tree and two flat tables.
//
// None of the containers are safe for concurrent use, callers that share a container between
// goroutines must serialize access themselves.
//
// Iterators handed out by a container stay valid only until the next structural change (an insert of
// a new key, an erase, a rehash or a clear). Every container keeps a modification counter and stamps
// it into its iterators, so using a stale iterator returns InvalidIterator rather than garbage.
package assoctables

import "iter"

// Container - The contract every table and tree in this module fulfills
type Container[K comparable, V any] interface {
	// Len - Returns the number of entries
	Len() int
	// Empty - Returns true if there are no entries
	Empty() bool
	// Contains - Returns true if key is present
	Contains(key K) bool
	// All - Returns a lazy, restartable sequence over all entries in the container's natural order.
	// The container must not be structurally modified while the sequence is being consumed.
	All() iter.Seq2[K, V]
}
