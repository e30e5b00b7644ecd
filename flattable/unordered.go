package flattable

import (
	"slices"

	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/internal/model"
	"github.com/pkg/errors"
)

// Unordered - A table keeping its entries in a slice in insertion order, until an erase moves the last entry
// into the hole left behind. Lookups are linear scans.
type Unordered[K comparable, V any] struct {
	table[K, V]
}

// NewUnordered - Returns a pointer to a new empty Unordered table
func NewUnordered[K comparable, V any]() *Unordered[K, V] {
	return &Unordered[K, V]{}
}

// Insert - Appends the key with value, or updates the value if the key already exists.
//
// It returns:
//   - it is an iterator positioned at the key
func (U *Unordered[K, V]) Insert(key K, value V) (it Iterator[K, V]) {
	if pos := U.search(key); pos >= 0 {
		U.entries[pos].Value = value
		return U.iteratorAt(pos)
	}

	U.entries = append(U.entries, model.Entry[K, V]{Key: key, Value: value})
	U.modCount++

	return U.iteratorAt(len(U.entries) - 1)
}

// Find - Returns an iterator positioned at the key, or End if the key does not exist
func (U *Unordered[K, V]) Find(key K) Iterator[K, V] {
	if pos := U.search(key); pos >= 0 {
		return U.iteratorAt(pos)
	}

	return U.End()
}

// Contains - Returns true if the key exists
func (U *Unordered[K, V]) Contains(key K) bool {
	return U.search(key) >= 0
}

// Erase - Removes the key by moving the last entry into its position.
//
// It returns:
//   - next is an iterator to the moved entry, or End if the removed entry was the last one. A key that does not
//     exist is ignored and End is returned.
func (U *Unordered[K, V]) Erase(key K) (next Iterator[K, V]) {
	pos := U.search(key)
	if pos < 0 {
		return U.End()
	}

	last := len(U.entries) - 1
	U.entries[pos] = U.entries[last]
	U.entries[last] = model.Entry[K, V]{}
	U.entries = U.entries[:last]
	U.modCount++

	return U.iteratorAt(pos)
}

// At - Returns a pointer to the value stored for key.
//
// It returns:
//   - err is of type assoctables.KeyNotFound if the key does not exist
func (U *Unordered[K, V]) At(key K) (value *V, err error) {
	pos := U.search(key)
	if pos < 0 {
		err = errors.Wrapf(assoctables.KeyNotFound{}, "lookup in unordered table of %d entries", len(U.entries))
		return
	}

	value = &U.entries[pos].Value
	return
}

func (U *Unordered[K, V]) search(key K) int {
	return slices.IndexFunc(U.entries, func(e model.Entry[K, V]) bool { return e.Key == key })
}
