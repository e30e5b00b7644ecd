package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHashAlgorithm_Hash(t *testing.T) {
	t.Run("equal keys give equal hash values", func(t *testing.T) {
		// Prepare
		hs := Default[string]()
		hi := Default[int]()

		type point struct{ x, y int }
		hp := Default[point]()

		// Execute & Check
		assert.Equal(t, hs.Hash("apple"), hs.Hash("apple"), "string keys hash equal")
		assert.NotEqual(t, hs.Hash("apple"), hs.Hash("apricot"), "different strings differ")
		assert.Equal(t, hi.Hash(42), hi.Hash(42), "int keys hash equal")
		assert.NotEqual(t, hi.Hash(1), hi.Hash(2), "different ints differ")
		assert.Equal(t, hp.Hash(point{1, 2}), hp.Hash(point{1, 2}), "struct keys hash equal")
	})

	t.Run("string hashing matches xxhash of bytes", func(t *testing.T) {
		// Prepare
		h := Default[string]()

		// Execute
		v := h.Hash("xxhash")

		// Check
		assert.Equal(t, Bytes([]byte("xxhash")), v, "same hash for string and bytes")
	})
}

func TestIdentity(t *testing.T) {
	t.Run("returns key as hash", func(t *testing.T) {
		// Prepare
		h := Identity[int]()

		// Execute & Check
		assert.Equal(t, uint64(0), h.Hash(0))
		assert.Equal(t, uint64(14), h.Hash(14))
	})
}

func TestMix64(t *testing.T) {
	t.Run("spreads sequential integers", func(t *testing.T) {
		// Prepare
		seen := make(map[uint64]struct{})

		// Execute
		for i := uint64(0); i < 1000; i++ {
			seen[Mix64(i)&15] = struct{}{}
		}

		// Check
		assert.Len(t, seen, 16, "all low nibble values are hit")
	})
}
