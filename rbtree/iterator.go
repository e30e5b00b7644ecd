package rbtree

import (
	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/arena"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Iterator - A forward only position in a Tree walking keys in ascending order. It is positioned at the nil node
// when it is End. Inserting a new key, erasing or clearing invalidates existing iterators.
type Iterator[K constraints.Ordered, V any] struct {
	tree     *Tree[K, V]
	node     int
	modCount uint64
}

// Begin - Returns an iterator at the smallest key, or End if the tree is empty
func (T *Tree[K, V]) Begin() Iterator[K, V] {
	return T.iteratorAt(T.minimum(T.root))
}

// End - Returns the iterator positioned at the nil node
func (T *Tree[K, V]) End() Iterator[K, V] {
	return T.iteratorAt(arena.Null)
}

func (T *Tree[K, V]) iteratorAt(i int) Iterator[K, V] {
	return Iterator[K, V]{tree: T, node: i, modCount: T.modCount}
}

// Key - Returns the key at the iterator position
func (I Iterator[K, V]) Key() (key K, err error) {
	if err = I.check(); err != nil {
		return
	}

	key = I.tree.node(I.node).key
	return
}

// Value - Returns a pointer to the value at the iterator position, the value may be modified through it
func (I Iterator[K, V]) Value() (value *V, err error) {
	if err = I.check(); err != nil {
		return
	}

	value = &I.tree.node(I.node).value
	return
}

// Next - Moves to the in-order successor, or to End after the largest key
func (I *Iterator[K, V]) Next() error {
	if err := I.check(); err != nil {
		return err
	}

	I.node = I.tree.successor(I.node)
	return nil
}

// Valid - Returns true if the iterator can be dereferenced
func (I Iterator[K, V]) Valid() bool {
	return I.check() == nil
}

// Equal - Returns true if both iterators belong to the same tree and point at the same node
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.tree == other.tree && I.node == other.node
}

func (I Iterator[K, V]) check() error {
	switch {
	case I.tree == nil:
		return errors.Wrap(assoctables.InvalidIterator{}, "iterator is not bound to a tree")
	case I.modCount != I.tree.modCount:
		return errors.Wrap(assoctables.InvalidIterator{}, "tree was modified after the iterator was created")
	case I.node == arena.Null:
		return errors.Wrap(assoctables.InvalidIterator{}, "dereferencing nil node")
	}

	return nil
}
