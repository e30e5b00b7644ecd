package rbtree

import (
	"iter"

	"github.com/gostonefire/assoctables/internal/arena"
	"golang.org/x/exp/constraints"
)

// Tree - Represents a red-black binary search tree mapping ordered keys to values.
// Every node is colored red or black such that the root is black, a red node has no red child and every path
// from a node down to a leaf passes the same number of black nodes. All leaf links point at the shared nil node
// stored at arena index 0, which is black and never written to.
type Tree[K constraints.Ordered, V any] struct {
	nodes    *arena.Arena[node[K, V]]
	root     int
	size     int
	modCount uint64
}

type color uint8

const (
	black color = iota
	red
)

type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	left   int
	right  int
	parent int
	color  color
}

// New - Returns a pointer to a new empty Tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{nodes: arena.New(node[K, V]{color: black})}
}

// Insert - Adds the key with value, or updates the value in place if the key already exists.
//
// It returns:
//   - it is an iterator positioned at the key
//   - inserted is true if a new node was created and false if an existing value was updated
func (T *Tree[K, V]) Insert(key K, value V) (it Iterator[K, V], inserted bool) {
	parent := arena.Null
	for x := T.root; x != arena.Null; {
		parent = x
		n := T.node(x)
		switch {
		case key < n.key:
			x = n.left
		case key > n.key:
			x = n.right
		default:
			n.value = value
			return T.iteratorAt(x), false
		}
	}

	z := T.nodes.Alloc(node[K, V]{key: key, value: value, parent: parent, color: red})
	switch {
	case parent == arena.Null:
		T.root = z
	case key < T.node(parent).key:
		T.node(parent).left = z
	default:
		T.node(parent).right = z
	}

	T.insertFixup(z)
	T.size++
	T.modCount++

	return T.iteratorAt(z), true
}

// Erase - Removes the key. A key that does not exist is ignored.
//
// It returns:
//   - erased is true if the key existed
func (T *Tree[K, V]) Erase(key K) (erased bool) {
	z := T.search(key)
	if z == arena.Null {
		return false
	}

	T.delete(z)
	T.nodes.Release(z)
	T.size--
	T.modCount++

	return true
}

// Find - Returns an iterator positioned at the key, or End if the key does not exist
func (T *Tree[K, V]) Find(key K) Iterator[K, V] {
	return T.iteratorAt(T.search(key))
}

// Contains - Returns true if the key exists
func (T *Tree[K, V]) Contains(key K) bool {
	return T.search(key) != arena.Null
}

// Index - Returns a pointer to the value stored for key, inserting the zero value of V first if the key does
// not exist. The pointer is valid until the next insert of a new key.
func (T *Tree[K, V]) Index(key K) *V {
	if i := T.search(key); i != arena.Null {
		return &T.node(i).value
	}

	var zero V
	it, _ := T.Insert(key, zero)

	return &T.node(it.node).value
}

// Clear - Removes all entries
func (T *Tree[K, V]) Clear() {
	T.nodes.Reset()
	T.root = arena.Null
	T.size = 0
	T.modCount++
}

// Clone - Returns a deep copy of the tree keeping its shape and colors. The copy shares no nodes with the
// original.
func (T *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		nodes: T.nodes.Clone(),
		root:  T.root,
		size:  T.size,
	}
}

// Len - Returns the number of entries
func (T *Tree[K, V]) Len() int {
	return T.size
}

// Empty - Returns true if there are no entries
func (T *Tree[K, V]) Empty() bool {
	return T.size == 0
}

// All - Returns a lazy sequence over all entries in ascending key order
func (T *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := T.minimum(T.root); i != arena.Null; i = T.successor(i) {
			n := T.node(i)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
