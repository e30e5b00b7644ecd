package flattable

import (
	"cmp"
	"slices"

	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Ordered - A table keeping its entries in a slice sorted by key. Lookups are binary searches while inserts and
// erases shift the entries after the affected position.
type Ordered[K constraints.Ordered, V any] struct {
	table[K, V]
}

// NewOrdered - Returns a pointer to a new empty Ordered table
func NewOrdered[K constraints.Ordered, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{}
}

// Insert - Adds the key with value at its sorted position, or updates the value if the key already exists.
//
// It returns:
//   - it is an iterator positioned at the key
func (O *Ordered[K, V]) Insert(key K, value V) (it Iterator[K, V]) {
	pos, found := O.search(key)
	if found {
		O.entries[pos].Value = value
		return O.iteratorAt(pos)
	}

	O.entries = slices.Insert(O.entries, pos, model.Entry[K, V]{Key: key, Value: value})
	O.modCount++

	return O.iteratorAt(pos)
}

// Find - Returns an iterator positioned at the key, or End if the key does not exist
func (O *Ordered[K, V]) Find(key K) Iterator[K, V] {
	if pos, found := O.search(key); found {
		return O.iteratorAt(pos)
	}

	return O.End()
}

// Contains - Returns true if the key exists
func (O *Ordered[K, V]) Contains(key K) bool {
	_, found := O.search(key)
	return found
}

// Erase - Removes the key keeping the remaining entries sorted.
//
// It returns:
//   - next is an iterator to the entry that followed the removed one, or End. A key that does not exist is
//     ignored and End is returned.
func (O *Ordered[K, V]) Erase(key K) (next Iterator[K, V]) {
	pos, found := O.search(key)
	if !found {
		return O.End()
	}

	O.entries = slices.Delete(O.entries, pos, pos+1)
	O.modCount++

	return O.iteratorAt(pos)
}

// At - Returns a pointer to the value stored for key.
//
// It returns:
//   - err is of type assoctables.KeyNotFound if the key does not exist
func (O *Ordered[K, V]) At(key K) (value *V, err error) {
	pos, found := O.search(key)
	if !found {
		err = errors.Wrapf(assoctables.KeyNotFound{}, "lookup in ordered table of %d entries", len(O.entries))
		return
	}

	value = &O.entries[pos].Value
	return
}

// search - Returns the position of key, or the position it would be inserted at
func (O *Ordered[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(O.entries, key, func(e model.Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
}
