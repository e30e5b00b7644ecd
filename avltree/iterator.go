package avltree

import (
	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/arena"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Iterator - A bidirectional position in a Tree walking keys in ascending order through parent links.
// The End iterator can neither be dereferenced nor moved, and any structural change of the tree (new key or
// erase) invalidates existing iterators.
type Iterator[K constraints.Ordered, V any] struct {
	tree     *Tree[K, V]
	node     int
	modCount uint64
}

// Begin - Returns an iterator at the smallest key, or End if the tree is empty
func (T *Tree[K, V]) Begin() Iterator[K, V] {
	return T.iteratorAt(T.leftmost(T.root))
}

// End - Returns the iterator positioned past the largest key
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

// Prev - Moves to the in-order predecessor. End keeps no handle on the largest key, so decrementing it fails,
// as does moving before the smallest key. On failure the iterator is left where it is.
func (I *Iterator[K, V]) Prev() error {
	if err := I.check(); err != nil {
		return err
	}

	p := I.tree.predecessor(I.node)
	if p == arena.Null {
		return errors.Wrap(assoctables.InvalidIterator{}, "decrementing past the smallest key")
	}

	I.node = p
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

// check - Returns an error if the iterator can't be dereferenced or moved
func (I Iterator[K, V]) check() error {
	switch {
	case I.tree == nil:
		return errors.Wrap(assoctables.InvalidIterator{}, "iterator is not bound to a tree")
	case I.modCount != I.tree.modCount:
		return errors.Wrap(assoctables.InvalidIterator{}, "tree was modified after the iterator was created")
	case I.node == arena.Null:
		return errors.Wrap(assoctables.InvalidIterator{}, "using end iterator")
	}

	return nil
}
