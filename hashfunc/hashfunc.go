package hashfunc

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashAlgorithm - Interface that permits a user of the hash tables to supply a custom hash function suited for its
// particular distribution of keys.
type HashAlgorithm[K comparable] interface {
	// Hash - Given key it generates a 64-bit hash value. The tables reduce it modulo their capacity, so the value
	// itself may use the full 64-bit range. Equal keys must produce equal hash values.
	Hash(key K) uint64
}

// Func - Adapts an ordinary function to the HashAlgorithm interface
type Func[K comparable] func(key K) uint64

// Hash - Calls f(key)
func (f Func[K]) Hash(key K) uint64 {
	return f(key)
}

// DefaultHashAlgorithm - The internally used hash algorithm. Strings are hashed with xxhash, integer kinds are run
// through a 64-bit finalizer and any other comparable key is hashed with maphash.Comparable using a seed created
// together with the instance.
type DefaultHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// Default - Returns a pointer to a new DefaultHashAlgorithm instance
func Default[K comparable]() *DefaultHashAlgorithm[K] {
	return &DefaultHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// Hash - Given key it generates a 64-bit hash value
func (D *DefaultHashAlgorithm[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return Mix64(uint64(k))
	case int8:
		return Mix64(uint64(k))
	case int16:
		return Mix64(uint64(k))
	case int32:
		return Mix64(uint64(k))
	case int64:
		return Mix64(uint64(k))
	case uint:
		return Mix64(uint64(k))
	case uint8:
		return Mix64(uint64(k))
	case uint16:
		return Mix64(uint64(k))
	case uint32:
		return Mix64(uint64(k))
	case uint64:
		return Mix64(k)
	case uintptr:
		return Mix64(uint64(k))
	}

	return maphash.Comparable(D.seed, key)
}

// Mix64 - The splitmix64 finalizer, spreads every input bit over the whole output so that sequential integers
// don't end up in sequential slots.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Identity - Returns a hash algorithm for integer keys that uses the key value itself as hash. Useful when the
// placement of keys must be predictable, e.g. to force collisions.
func Identity[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64]() Func[K] {
	return func(key K) uint64 {
		return uint64(key)
	}
}

// Bytes - Hashes a byte slice with xxhash, for keys that are fixed size byte arrays converted by the caller
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
