package openaddressing

import (
	"iter"

	"github.com/gostonefire/assoctables/conf"
	"github.com/gostonefire/assoctables/hashfunc"
	"github.com/gostonefire/assoctables/internal/hash"
	"github.com/gostonefire/assoctables/internal/log"
	"github.com/gostonefire/assoctables/internal/model"
	"go.uber.org/zap"
)

// Table - Represents a hash table using the Open Addressing Collision Resolution Technique with linear probing.
// Every slot is either empty, occupied or deleted (a tombstone). Erasing a key turns its slot into a tombstone so
// that probe sequences passing through it still reach keys stored further along, and tombstones are reused by
// later inserts. Before an insert the table grows if the load factor would reach the configured maximum, the new
// capacity is max(16, 2*capacity) and tombstones are dropped while rehashing.
type Table[K comparable, V any] struct {
	slots         []model.Slot[K, V]
	nOccupied     int64
	nDeleted      int64
	maxLoadFactor float64
	hashAlgorithm hashfunc.HashAlgorithm[K]
	probing       *hash.LinearProbingHashAlgorithm
	logger        *zap.Logger
	modCount      uint64
}

// Stat - Statistics on the current usage of the table
//   - Entries is the number of occupied slots
//   - Tombstones is the number of slots marked as deleted
//   - Capacity is the total number of slots
//   - LoadFactor is Entries divided by Capacity
type Stat struct {
	Entries    int64
	Tombstones int64
	Capacity   int64
	LoadFactor float64
}

// New - Returns a pointer to a new Table.
//   - capacity is the initial number of slots, zero or less gives conf.DefaultOpenAddressingCapacity
//   - hashAlgorithm is an optional custom hash algorithm, nil gives hashfunc.Default
func New[K comparable, V any](capacity int64, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	return NewFromConf[K, V](conf.TableConf{Capacity: capacity}, hashAlgorithm)
}

// NewFromConf - Returns a pointer to a new Table configured by a conf.TableConf struct.
// The configuration is expected to have been validated, see conf.TableConf.Validate.
func NewFromConf[K comparable, V any](tableConf conf.TableConf, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.Default[K]()
	}

	capacity := tableConf.CapacityOr(conf.DefaultOpenAddressingCapacity)

	return &Table[K, V]{
		slots:         make([]model.Slot[K, V], capacity),
		maxLoadFactor: tableConf.LoadFactor(),
		hashAlgorithm: hashAlgorithm,
		probing:       hash.NewLinearProbingHashAlgorithm(capacity),
		logger:        log.OrDefault(tableConf.Logger),
	}
}

// Insert - Adds the key with value, or updates the value if the key already exists.
//
// It returns:
//   - inserted is true if a new entry was created and false if an existing one was updated
func (T *Table[K, V]) Insert(key K, value V) (inserted bool) {
	// updating an existing key is not a placement and must not rehash
	if slot, ok := T.probingForGet(key); ok {
		T.slots[slot].Value = value
		return false
	}

	if T.needsRehash() {
		T.rehash()
	}

	for {
		slot, found, ok := T.probingForSet(key)
		if !ok {
			// Only reachable with a max load factor of 1 or more, grow and try again
			T.logger.Warn("probe sequence exhausted, forcing rehash",
				zap.Int64("capacity", T.Capacity()),
				zap.Int64("entries", T.nOccupied),
				zap.Int64("tombstones", T.nDeleted))
			T.rehash()
			continue
		}

		if found {
			T.slots[slot].Value = value
			return false
		}

		T.setSlot(slot, key, value)
		T.modCount++
		return true
	}
}

// Find - Returns a pointer to the value stored for key, or nil if the key does not exist.
// The pointer is valid until the next structural change of the table.
func (T *Table[K, V]) Find(key K) *V {
	slot, ok := T.probingForGet(key)
	if !ok {
		return nil
	}

	return &T.slots[slot].Value
}

// Contains - Returns true if the key exists
func (T *Table[K, V]) Contains(key K) bool {
	_, ok := T.probingForGet(key)
	return ok
}

// Erase - Removes the key by turning its slot into a tombstone. Capacity never shrinks.
//
// It returns:
//   - erased is true if the key existed
func (T *Table[K, V]) Erase(key K) (erased bool) {
	slot, ok := T.probingForGet(key)
	if !ok {
		return false
	}

	T.slots[slot] = model.Slot[K, V]{State: model.SlotDeleted}
	T.updateUtilizationInfo(model.SlotOccupied, model.SlotDeleted)
	T.modCount++

	return true
}

// Index - Returns a pointer to the value stored for key, inserting the zero value of V first if the key does
// not exist.
func (T *Table[K, V]) Index(key K) *V {
	if v := T.Find(key); v != nil {
		return v
	}

	var zero V
	T.Insert(key, zero)

	return T.Find(key)
}

// Clear - Resets all slots to empty, keeping the current capacity
func (T *Table[K, V]) Clear() {
	clear(T.slots)
	T.nOccupied = 0
	T.nDeleted = 0
	T.modCount++
}

// Clone - Returns a deep copy of the table, sharing nothing but the hash algorithm and logger with the original
func (T *Table[K, V]) Clone() *Table[K, V] {
	slots := make([]model.Slot[K, V], len(T.slots))
	_ = copy(slots, T.slots)

	return &Table[K, V]{
		slots:         slots,
		nOccupied:     T.nOccupied,
		nDeleted:      T.nDeleted,
		maxLoadFactor: T.maxLoadFactor,
		hashAlgorithm: T.hashAlgorithm,
		probing:       hash.NewLinearProbingHashAlgorithm(int64(len(slots))),
		logger:        T.logger,
	}
}

// Len - Returns the number of entries
func (T *Table[K, V]) Len() int {
	return int(T.nOccupied)
}

// Empty - Returns true if there are no entries
func (T *Table[K, V]) Empty() bool {
	return T.nOccupied == 0
}

// Capacity - Returns the number of slots
func (T *Table[K, V]) Capacity() int64 {
	return int64(len(T.slots))
}

// Stat - Returns statistics on the current usage of the table
func (T *Table[K, V]) Stat() Stat {
	s := Stat{
		Entries:    T.nOccupied,
		Tombstones: T.nDeleted,
		Capacity:   T.Capacity(),
	}
	if s.Capacity > 0 {
		s.LoadFactor = float64(s.Entries) / float64(s.Capacity)
	}

	return s
}

// All - Returns a lazy sequence over all entries in slot order. Empty and deleted slots are skipped.
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range T.slots {
			if T.slots[i].InUse() && !yield(T.slots[i].Key, T.slots[i].Value) {
				return
			}
		}
	}
}
