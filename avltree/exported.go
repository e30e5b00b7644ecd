package avltree

import (
	"iter"

	"github.com/gostonefire/assoctables/internal/arena"
	"golang.org/x/exp/constraints"
)

// Tree - Represents a self balancing AVL binary search tree mapping ordered keys to values.
// After every insert and erase each node on the path back to the root has its height recomputed and is rotated if
// the height of its two subtrees differ by more than one, so the tree height stays logarithmic in the number of
// entries. Nodes live in an arena and refer to their children and parent by index.
type Tree[K constraints.Ordered, V any] struct {
	nodes    *arena.Arena[node[K, V]]
	root     int
	size     int
	modCount uint64
}

type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	left   int
	right  int
	parent int
	height int
}

// New - Returns a pointer to a new empty Tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{nodes: arena.New(node[K, V]{})}
}

// Insert - Adds the key with value. If the key already exists its value is overwritten and the tree shape is
// left unchanged.
func (T *Tree[K, V]) Insert(key K, value V) {
	T.root = T.insert(T.root, arena.Null, key, value)
}

// Erase - Removes the key. A key that does not exist is ignored.
//
// It returns:
//   - erased is true if the key existed
func (T *Tree[K, V]) Erase(key K) (erased bool) {
	T.root, erased = T.erase(T.root, key)
	if T.root != arena.Null {
		T.node(T.root).parent = arena.Null
	}

	return
}

// Find - Returns an iterator positioned at the key, or End if the key does not exist
func (T *Tree[K, V]) Find(key K) Iterator[K, V] {
	return T.iteratorAt(T.search(key))
}

// Contains - Returns true if the key exists
func (T *Tree[K, V]) Contains(key K) bool {
	return T.search(key) != arena.Null
}

// Len - Returns the number of entries
func (T *Tree[K, V]) Len() int {
	return T.size
}

// Empty - Returns true if there are no entries
func (T *Tree[K, V]) Empty() bool {
	return T.size == 0
}

// Height - Returns the height of the tree, zero for an empty tree
func (T *Tree[K, V]) Height() int {
	return T.node(T.root).height
}

// All - Returns a lazy sequence over all entries in ascending key order
func (T *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := T.leftmost(T.root); i != arena.Null; i = T.successor(i) {
			n := T.node(i)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
