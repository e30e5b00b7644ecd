package separatechaining

import (
	"github.com/gostonefire/assoctables"
	"github.com/pkg/errors"
)

// Iterator - A forward only position in a Table. Incrementing moves along the current bucket chain and, once
// it is exhausted, skips empty buckets to the next non-empty one.
// It is invalidated by any structural change of the table (insert or erase), after which every method reports
// assoctables.InvalidIterator.
type Iterator[K comparable, V any] struct {
	table    *Table[K, V]
	bucket   int64
	index    int
	modCount uint64
}

// Begin - Returns an iterator at the first entry of the first non-empty bucket, or End if the table is empty
func (T *Table[K, V]) Begin() Iterator[K, V] {
	it := T.iteratorAt(0, 0)
	it.skipExhausted()
	return it
}

// End - Returns the iterator positioned past the last bucket
func (T *Table[K, V]) End() Iterator[K, V] {
	return T.iteratorAt(T.Capacity(), 0)
}

// iteratorAt - Returns an iterator stamped with the current modification count
func (T *Table[K, V]) iteratorAt(bucket int64, index int) Iterator[K, V] {
	return Iterator[K, V]{table: T, bucket: bucket, index: index, modCount: T.modCount}
}

// Key - Returns the key at the iterator position
func (I Iterator[K, V]) Key() (key K, err error) {
	if err = I.check(); err != nil {
		return
	}

	key = I.table.buckets[I.bucket][I.index].Key
	return
}

// Value - Returns a pointer to the value at the iterator position, the value may be modified through it
func (I Iterator[K, V]) Value() (value *V, err error) {
	if err = I.check(); err != nil {
		return
	}

	value = &I.table.buckets[I.bucket][I.index].Value
	return
}

// Next - Moves the iterator to the next entry, or to End
func (I *Iterator[K, V]) Next() error {
	if err := I.check(); err != nil {
		return err
	}

	I.index++
	I.skipExhausted()

	return nil
}

// Valid - Returns true if the iterator can be dereferenced
func (I Iterator[K, V]) Valid() bool {
	return I.check() == nil
}

// Equal - Returns true if both iterators belong to the same table and point at the same entry
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.table == other.table && I.bucket == other.bucket && I.index == other.index
}

// skipExhausted - Moves past the end of the current chain and any empty buckets that follow
func (I *Iterator[K, V]) skipExhausted() {
	for I.bucket < I.table.Capacity() && I.index >= len(I.table.buckets[I.bucket]) {
		I.bucket++
		I.index = 0
	}
}

// check - Returns an error if the iterator can't be dereferenced
func (I Iterator[K, V]) check() error {
	switch {
	case I.table == nil:
		return errors.Wrap(assoctables.InvalidIterator{}, "iterator is not bound to a table")
	case I.modCount != I.table.modCount:
		return errors.Wrap(assoctables.InvalidIterator{}, "table was modified after the iterator was created")
	case I.bucket >= I.table.Capacity() || I.index >= len(I.table.buckets[I.bucket]):
		return errors.Wrap(assoctables.InvalidIterator{}, "dereferencing end iterator")
	}

	return nil
}
