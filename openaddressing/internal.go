package openaddressing

import (
	"github.com/gostonefire/assoctables/conf"
	"github.com/gostonefire/assoctables/internal/model"
	"go.uber.org/zap"
)

// needsRehash - Returns true if adding one more entry would reach the max load factor
func (T *Table[K, V]) needsRehash() bool {
	capacity := len(T.slots)
	if capacity == 0 {
		return true
	}

	return float64(T.nOccupied+1)/float64(capacity) >= T.maxLoadFactor
}

// rehash - Allocates a new slot array of max(MinGrowCapacity, 2*capacity) and re-inserts every occupied slot.
// Tombstones are dropped.
func (T *Table[K, V]) rehash() {
	oldSlots := T.slots
	newCapacity := max(conf.MinGrowCapacity, 2*int64(len(oldSlots)))

	T.slots = make([]model.Slot[K, V], newCapacity)
	T.probing.SetTableSize(newCapacity)
	T.nOccupied = 0
	T.nDeleted = 0

	for i := range oldSlots {
		if oldSlots[i].InUse() {
			slot, _, _ := T.probingForSet(oldSlots[i].Key)
			T.setSlot(slot, oldSlots[i].Key, oldSlots[i].Value)
		}
	}
	T.modCount++

	T.logger.Debug("rehashed open addressing table",
		zap.Int("oldCapacity", len(oldSlots)),
		zap.Int64("newCapacity", newCapacity),
		zap.Int64("entries", T.nOccupied))
}

// setSlot - Occupies the slot with key and value and keeps the utilization counters in line
func (T *Table[K, V]) setSlot(slot int64, key K, value V) {
	fromState := T.slots[slot].State
	T.slots[slot] = model.Slot[K, V]{State: model.SlotOccupied, Entry: model.Entry[K, V]{Key: key, Value: value}}
	T.updateUtilizationInfo(fromState, model.SlotOccupied)
}

// updateUtilizationInfo - Updates the occupied and deleted counters given a slot state transition
func (T *Table[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.SlotOccupied:
		T.nOccupied--
	case model.SlotDeleted:
		T.nDeleted--
	}

	switch toState {
	case model.SlotOccupied:
		T.nOccupied++
	case model.SlotDeleted:
		T.nDeleted++
	}
}

// probingForGet - Is the Linear Probing algorithm for finding the slot holding key.
// Deleted slots are passed over, an empty slot ends the search.
func (T *Table[K, V]) probingForGet(key K) (slot int64, ok bool) {
	tableSize := int64(len(T.slots))
	if tableSize == 0 {
		return
	}

	hf1Value := T.probing.HashFunc1(T.hashAlgorithm.Hash(key))

	for i := int64(0); i < tableSize; i++ {
		probe := T.probing.ProbeIteration(hf1Value, i)

		switch T.slots[probe].State {
		case model.SlotEmpty:
			return
		case model.SlotOccupied:
			if T.slots[probe].Key == key {
				slot, ok = probe, true
				return
			}
		}
	}

	return
}

// probingForSet - Is the Linear Probing algorithm for finding the slot to set key in.
// It returns the slot holding key with found set to true, or else the earliest deleted slot on the probe sequence,
// or else the empty slot that ended the sequence. If the whole table was probed without finding any of those ok is
// false.
func (T *Table[K, V]) probingForSet(key K) (slot int64, found bool, ok bool) {
	var deletedSlot int64
	var hasCached bool

	tableSize := int64(len(T.slots))
	if tableSize == 0 {
		return
	}

	hf1Value := T.probing.HashFunc1(T.hashAlgorithm.Hash(key))

	for i := int64(0); i < tableSize; i++ {
		probe := T.probing.ProbeIteration(hf1Value, i)

		switch T.slots[probe].State {
		case model.SlotEmpty:
			if hasCached {
				slot, ok = deletedSlot, true
				return
			}
			slot, ok = probe, true
			return

		case model.SlotOccupied:
			if T.slots[probe].Key == key {
				slot, found, ok = probe, true, true
				return
			}

		case model.SlotDeleted:
			if !hasCached {
				deletedSlot = probe
				hasCached = true
			}
		}
	}

	if hasCached {
		slot, ok = deletedSlot, true
	}

	return
}
