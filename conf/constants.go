package conf

// DefaultOpenAddressingCapacity - Number of slots an open addressing table starts with when no capacity is given
const DefaultOpenAddressingCapacity int64 = 16

// MinGrowCapacity - Smallest capacity an open addressing table grows to, growth is max(MinGrowCapacity, 2*capacity)
const MinGrowCapacity int64 = 16

// DefaultMaxLoadFactor - Occupied slots divided by capacity that triggers a rehash before an insert
const DefaultMaxLoadFactor float64 = 0.7

// DefaultChainedCapacity - Requested number of buckets for a separate chaining table when no capacity is given,
// it is rounded up to the nearest prime
const DefaultChainedCapacity int64 = 11
