package flattable

import (
	"iter"

	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/model"
	"github.com/pkg/errors"
)

// table - The slice of entries shared by Ordered and Unordered together with the iteration support
type table[K comparable, V any] struct {
	entries  []model.Entry[K, V]
	modCount uint64
}

// Iterator - A forward only position in a flat table. Inserting a new key or erasing invalidates existing
// iterators.
type Iterator[K comparable, V any] struct {
	table    *table[K, V]
	pos      int
	modCount uint64
}

// Len - Returns the number of entries
func (T *table[K, V]) Len() int {
	return len(T.entries)
}

// Empty - Returns true if there are no entries
func (T *table[K, V]) Empty() bool {
	return len(T.entries) == 0
}

// Begin - Returns an iterator at the first entry, or End if the table is empty
func (T *table[K, V]) Begin() Iterator[K, V] {
	return T.iteratorAt(0)
}

// End - Returns the iterator positioned past the last entry
func (T *table[K, V]) End() Iterator[K, V] {
	return T.iteratorAt(len(T.entries))
}

// All - Returns a lazy sequence over all entries in storage order
func (T *table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range T.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (T *table[K, V]) iteratorAt(pos int) Iterator[K, V] {
	return Iterator[K, V]{table: T, pos: pos, modCount: T.modCount}
}

// Key - Returns the key at the iterator position
func (I Iterator[K, V]) Key() (key K, err error) {
	if err = I.check(); err != nil {
		return
	}

	key = I.table.entries[I.pos].Key
	return
}

// Value - Returns a pointer to the value at the iterator position, the value may be modified through it
func (I Iterator[K, V]) Value() (value *V, err error) {
	if err = I.check(); err != nil {
		return
	}

	value = &I.table.entries[I.pos].Value
	return
}

// Next - Moves to the next entry, or to End
func (I *Iterator[K, V]) Next() error {
	if err := I.check(); err != nil {
		return err
	}

	I.pos++
	return nil
}

// Valid - Returns true if the iterator can be dereferenced
func (I Iterator[K, V]) Valid() bool {
	return I.check() == nil
}

// Equal - Returns true if both iterators belong to the same table and point at the same entry
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I.table == other.table && I.pos == other.pos
}

func (I Iterator[K, V]) check() error {
	switch {
	case I.table == nil:
		return errors.Wrap(assoctables.InvalidIterator{}, "iterator is not bound to a table")
	case I.modCount != I.table.modCount:
		return errors.Wrap(assoctables.InvalidIterator{}, "table was modified after the iterator was created")
	case I.pos >= len(I.table.entries):
		return errors.Wrap(assoctables.InvalidIterator{}, "dereferencing end iterator")
	}

	return nil
}
