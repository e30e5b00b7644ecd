package openaddressing

import (
	"github.com/gostonefire/assoctables"
	"github.com/pkg/errors"
)

// Iterator - A forward only position in a Table, walking occupied slots in slot order.
// It is invalidated by any structural change of the table (new key, erase, rehash, clear), after which every
// method reports assoctables.InvalidIterator.
type Iterator[K comparable, V any] struct {
	table    *Table[K, V]
	slot     int64
	modCount uint64
}

// Begin - Returns an iterator at the first occupied slot, or End if the table is empty
func (T *Table[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{table: T, slot: 0, modCount: T.modCount}
	it.advanceToNextOccupied()
	return it
}

// End - Returns the iterator positioned past the last slot
func (T *Table[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{table: T, slot: T.Capacity(), modCount: T.modCount}
}

// Key - Returns the key at the iterator position
func (I Iterator[K, V]) Key() (key K, err error) {
	if err = I.check(); err != nil {
		return
	}

	key = I.table.slots[I.slot].Key
	return
}

// Value - Returns a pointer to the value at the iterator position, the value may be modified through it
func (I Iterator[K, V]) Value() (value *V, err error) {
	if err = I.check(); err != nil {
		return
	}

	value = &I.table.slots[I.slot].Value
	return
}

// Next - Moves the iterator to the next occupied slot, or to End
func (I *Iterator[K, V]) Next() error {
	if err := I.check(); err != nil {
		return err
	}

	I.slot++
	I.advanceToNextOccupied()

	return nil
}

// Valid - Returns true if the iterator can be dereferenced
func (I Iterator[K, V]) Valid() bool {
	return I.check() == nil
}

// Equal - Returns true if both iterators belong to the same table and point at the same slot
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.table == other.table && I.slot == other.slot
}

// advanceToNextOccupied - Skips empty and deleted slots
func (I *Iterator[K, V]) advanceToNextOccupied() {
	for I.slot < I.table.Capacity() && !I.table.slots[I.slot].InUse() {
		I.slot++
	}
}

// check - Returns an error if the iterator can't be dereferenced
func (I Iterator[K, V]) check() error {
	switch {
	case I.table == nil:
		return errors.Wrap(assoctables.InvalidIterator{}, "iterator is not bound to a table")
	case I.modCount != I.table.modCount:
		return errors.Wrap(assoctables.InvalidIterator{}, "table was modified after the iterator was created")
	case I.slot >= I.table.Capacity() || !I.table.slots[I.slot].InUse():
		return errors.Wrap(assoctables.InvalidIterator{}, "dereferencing end iterator")
	}

	return nil
}
