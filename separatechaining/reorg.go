package separatechaining

import (
	"github.com/gostonefire/assoctables/conf"
	"github.com/gostonefire/assoctables/hashfunc"
	"go.uber.org/zap"
)

// ReorgConf - Is a struct to be passed in the call to Reorg.
//   - Capacity is the requested number of buckets of the new table, zero or less sizes it to one bucket per entry
//     but never below conf.DefaultChainedCapacity
//   - HashAlgorithm replaces the hash algorithm of the original table, nil keeps it
type ReorgConf[K comparable] struct {
	Capacity      int64
	HashAlgorithm hashfunc.HashAlgorithm[K]
}

// Reorg - Is used when the table needs to reflect new conditions as compared to when it was first created, since
// it never grows by itself. For instance if the first estimate of the number of keys was way off and chains got
// long, or a hash algorithm better suited for the keys has been found.
// All entries are copied bucket by bucket into a new table, the original table is left untouched.
func (T *Table[K, V]) Reorg(reorgConf ReorgConf[K]) *Table[K, V] {
	capacity := reorgConf.Capacity
	if capacity <= 0 {
		capacity = max(int64(T.size), conf.DefaultChainedCapacity)
	}

	hashAlgorithm := reorgConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = T.hashAlgorithm
	}

	to := NewFromConf[K, V](conf.TableConf{Capacity: capacity, Logger: T.logger}, hashAlgorithm)
	for _, chain := range T.buckets {
		for _, e := range chain {
			bucket := to.bucketIndex(e.Key)
			to.buckets[bucket] = append(to.buckets[bucket], e)
		}
	}
	to.size = T.size

	T.logger.Debug("reorganized chained table",
		zap.Int64("fromCapacity", T.Capacity()),
		zap.Int64("toCapacity", to.Capacity()),
		zap.Int("entries", to.size))

	return to
}
