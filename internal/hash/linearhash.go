package hash

// LinearProbingHashAlgorithm - Slot selection for the open addressing table. A 64-bit key hash is reduced with
// slot = hash mod tableSize and collisions are resolved by stepping one slot at a time, wrapping around at the end
// of the table.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The size is used as is, growth policy belongs to the table.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// GetTableSize - Returns the table size the algorithm is currently addressing
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// HashFunc1 - Given a key hash it generates an index (slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(h uint64) int64 {
	return int64(h % uint64(L.tableSize))
}

// ProbeIteration - Implements Linear Probing, iteration must be within [0, table size)
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
