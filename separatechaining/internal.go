package separatechaining

import (
	"slices"

	"github.com/gostonefire/assoctables/internal/model"
)

// bucketIndex - Returns the bucket the key belongs to
func (T *Table[K, V]) bucketIndex(key K) int64 {
	return T.bucketing.HashFunc1(T.hashAlgorithm.Hash(key))
}

// position - Returns the position of key within the bucket chain, or -1
func (T *Table[K, V]) position(bucket int64, key K) int {
	return slices.IndexFunc(T.buckets[bucket], func(e model.Entry[K, V]) bool { return e.Key == key })
}

// removeAt - Removes the chain element and returns an iterator to its logical successor
func (T *Table[K, V]) removeAt(bucket int64, i int) Iterator[K, V] {
	T.buckets[bucket] = slices.Delete(T.buckets[bucket], i, i+1)
	T.size--
	T.modCount++

	it := T.iteratorAt(bucket, i)
	it.skipExhausted()
	return it
}
