package model

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (tombstone). It has to stay
// distinguishable from SlotEmpty, otherwise a search would stop at it and miss keys stored further along the
// probe sequence.
const SlotDeleted uint8 = 2

// Entry - Represents one key/value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Slot - Represents one slot in an open addressing table
type Slot[K comparable, V any] struct {
	State uint8
	Entry[K, V]
}

// InUse - Returns true if the slot holds a live entry
func (S *Slot[K, V]) InUse() bool {
	return S.State == SlotOccupied
}
