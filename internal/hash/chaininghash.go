package hash

import "github.com/gostonefire/assoctables/internal/utils"

// SeparateChainingHashAlgorithm - Bucket selection for the separate chaining table. A 64-bit key hash is reduced
// with bucket = hash mod tableSize, where tableSize is the nearest prime equal to or bigger than the requested
// table size. A prime table size reduces clustering when key hashes share common factors.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest prime equal to or bigger than the requested size.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = utils.NextPrime(tableSize)
}

// GetTableSize - Returns the table size the algorithm is supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// HashFunc1 - Given a key hash it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HashFunc1(h uint64) int64 {
	return int64(h % uint64(S.tableSize))
}
