package separatechaining

import (
	"iter"

	"github.com/gostonefire/assoctables"
	"github.com/gostonefire/assoctables/conf"
	"github.com/gostonefire/assoctables/hashfunc"
	"github.com/gostonefire/assoctables/internal/hash"
	"github.com/gostonefire/assoctables/internal/log"
	"github.com/gostonefire/assoctables/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Table - Represents a hash table using the Separate Chaining Collision Resolution Technique.
// The number of buckets is fixed at construction to the smallest prime equal to or bigger than the requested
// capacity, and the table never grows. Each bucket holds a chain of entries in insertion order.
type Table[K comparable, V any] struct {
	buckets       [][]model.Entry[K, V]
	size          int
	hashAlgorithm hashfunc.HashAlgorithm[K]
	bucketing     *hash.SeparateChainingHashAlgorithm
	logger        *zap.Logger
	modCount      uint64
}

// Stat - Statistics on the current usage of the table
//   - Entries is the number of stored entries
//   - Capacity is the number of buckets
//   - LongestChain is the length of the longest bucket chain
//   - Distribution maps a chain length to the number of buckets having that length
type Stat struct {
	Entries      int64
	Capacity     int64
	LongestChain int64
	Distribution map[int64]int64
}

// New - Returns a pointer to a new Table.
//   - capacity is the requested number of buckets, zero or less gives conf.DefaultChainedCapacity. It is rounded up
//     to the nearest prime.
//   - hashAlgorithm is an optional custom hash algorithm, nil gives hashfunc.Default
func New[K comparable, V any](capacity int64, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	return NewFromConf[K, V](conf.TableConf{Capacity: capacity}, hashAlgorithm)
}

// NewFromConf - Returns a pointer to a new Table configured by a conf.TableConf struct.
// MaxLoadFactor is ignored since the table doesn't grow.
func NewFromConf[K comparable, V any](tableConf conf.TableConf, hashAlgorithm hashfunc.HashAlgorithm[K]) *Table[K, V] {
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.Default[K]()
	}

	requested := tableConf.CapacityOr(conf.DefaultChainedCapacity)
	bucketing := hash.NewSeparateChainingHashAlgorithm(requested)
	logger := log.OrDefault(tableConf.Logger)

	if bucketing.GetTableSize() != requested {
		logger.Debug("rounded chained table capacity up to a prime",
			zap.Int64("requested", requested),
			zap.Int64("capacity", bucketing.GetTableSize()))
	}

	return &Table[K, V]{
		buckets:       make([][]model.Entry[K, V], bucketing.GetTableSize()),
		hashAlgorithm: hashAlgorithm,
		bucketing:     bucketing,
		logger:        logger,
	}
}

// Insert - Appends the key with value at the tail of its bucket chain.
//
// It returns:
//   - it is an iterator positioned at the new entry
//   - err is of type assoctables.DuplicateKey if the key already exists, the table is then left unchanged
func (T *Table[K, V]) Insert(key K, value V) (it Iterator[K, V], err error) {
	bucket := T.bucketIndex(key)
	if T.position(bucket, key) >= 0 {
		err = errors.Wrapf(assoctables.DuplicateKey{}, "insert into bucket %d", bucket)
		return
	}

	T.buckets[bucket] = append(T.buckets[bucket], model.Entry[K, V]{Key: key, Value: value})
	T.size++
	T.modCount++

	it = T.iteratorAt(bucket, len(T.buckets[bucket])-1)
	return
}

// Find - Returns an iterator positioned at the key, or End if the key does not exist
func (T *Table[K, V]) Find(key K) Iterator[K, V] {
	bucket := T.bucketIndex(key)
	if i := T.position(bucket, key); i >= 0 {
		return T.iteratorAt(bucket, i)
	}

	return T.End()
}

// Contains - Returns true if the key exists
func (T *Table[K, V]) Contains(key K) bool {
	bucket := T.bucketIndex(key)
	return T.position(bucket, key) >= 0
}

// Erase - Removes the key from its bucket chain.
//
// It returns:
//   - next is an iterator to the entry following the removed one in iteration order, or End
//   - err is of type assoctables.KeyNotFound if the key does not exist
func (T *Table[K, V]) Erase(key K) (next Iterator[K, V], err error) {
	bucket := T.bucketIndex(key)
	i := T.position(bucket, key)
	if i < 0 {
		err = errors.Wrapf(assoctables.KeyNotFound{}, "erase from bucket %d", bucket)
		return
	}

	next = T.removeAt(bucket, i)
	return
}

// EraseAt - Removes the entry the iterator is positioned at.
//
// It returns:
//   - next is an iterator to the entry following the removed one in iteration order, or End
//   - err is of type assoctables.InvalidIterator if it is End, stale or belongs to another table
func (T *Table[K, V]) EraseAt(it Iterator[K, V]) (next Iterator[K, V], err error) {
	if it.table != T {
		err = errors.Wrap(assoctables.InvalidIterator{}, "iterator belongs to another table")
		return
	}
	if err = it.check(); err != nil {
		return
	}

	next = T.removeAt(it.bucket, it.index)
	return
}

// Index - Returns a pointer to the value stored for key, inserting the zero value of V first if the key does
// not exist. The pointer is valid until the next structural change of the table.
func (T *Table[K, V]) Index(key K) *V {
	bucket := T.bucketIndex(key)
	i := T.position(bucket, key)
	if i < 0 {
		var zero V
		T.buckets[bucket] = append(T.buckets[bucket], model.Entry[K, V]{Key: key, Value: zero})
		T.size++
		T.modCount++
		i = len(T.buckets[bucket]) - 1
	}

	return &T.buckets[bucket][i].Value
}

// At - Returns the value stored for key without inserting anything.
//
// It returns:
//   - err is of type assoctables.KeyNotFound if the key does not exist
func (T *Table[K, V]) At(key K) (value V, err error) {
	bucket := T.bucketIndex(key)
	i := T.position(bucket, key)
	if i < 0 {
		err = errors.Wrapf(assoctables.KeyNotFound{}, "lookup in bucket %d", bucket)
		return
	}

	value = T.buckets[bucket][i].Value
	return
}

// Len - Returns the number of entries
func (T *Table[K, V]) Len() int {
	return T.size
}

// Empty - Returns true if there are no entries
func (T *Table[K, V]) Empty() bool {
	return T.size == 0
}

// Capacity - Returns the number of buckets
func (T *Table[K, V]) Capacity() int64 {
	return int64(len(T.buckets))
}

// Stat - Returns statistics on the current usage of the table
func (T *Table[K, V]) Stat() Stat {
	s := Stat{
		Entries:      int64(T.size),
		Capacity:     T.Capacity(),
		Distribution: make(map[int64]int64),
	}

	for _, chain := range T.buckets {
		l := int64(len(chain))
		s.Distribution[l]++
		s.LongestChain = max(s.LongestChain, l)
	}

	return s
}

// All - Returns a lazy sequence over all entries, bucket index ascending and chain order within a bucket
func (T *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range T.buckets {
			for _, e := range chain {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}
