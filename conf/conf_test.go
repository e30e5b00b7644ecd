package conf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("decodes a table configuration", func(t *testing.T) {
		// Prepare
		doc := "capacity: 64\nmaxLoadFactor: 0.5\n"

		// Execute
		c, err := Load(strings.NewReader(doc))

		// Check
		assert.NoError(t, err, "decodes configuration")
		assert.Equal(t, int64(64), c.Capacity, "capacity decoded")
		assert.Equal(t, 0.5, c.MaxLoadFactor, "load factor decoded")
		assert.Equal(t, int64(64), c.CapacityOr(DefaultOpenAddressingCapacity), "configured capacity used")
		assert.Equal(t, 0.5, c.LoadFactor(), "configured load factor used")
	})

	t.Run("empty document gives defaults", func(t *testing.T) {
		// Execute
		c, err := Load(strings.NewReader(""))

		// Check
		assert.NoError(t, err, "empty document accepted")
		assert.Equal(t, DefaultChainedCapacity, c.CapacityOr(DefaultChainedCapacity), "default capacity")
		assert.Equal(t, DefaultMaxLoadFactor, c.LoadFactor(), "default load factor")
	})

	t.Run("rejects out of range load factor", func(t *testing.T) {
		// Execute
		_, err := Load(strings.NewReader("maxLoadFactor: 1.5\n"))

		// Check
		assert.Error(t, err, "load factor of 1.5 rejected")
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		// Execute
		_, err := Load(strings.NewReader("capacity: -3\n"))

		// Check
		assert.Error(t, err, "negative capacity rejected")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		// Execute
		_, err := Load(strings.NewReader("buckets: 3\n"))

		// Check
		assert.Error(t, err, "unknown field rejected")
	})
}
