package assoctables

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Run("kinds match through wrapping regardless of message", func(t *testing.T) {
		// Prepare
		err := pkgerrors.Wrap(KeyNotFound{msg: "no such key"}, "erase from bucket 3")

		// Execute & Check
		assert.True(t, errors.Is(err, KeyNotFound{}), "wrapped KeyNotFound matches")
		assert.False(t, errors.Is(err, DuplicateKey{}), "other kind does not match")
		assert.Equal(t, "erase from bucket 3: no such key", err.Error())
	})

	t.Run("default messages", func(t *testing.T) {
		// Execute & Check
		assert.Equal(t, "the element with this key already exists", DuplicateKey{}.Error())
		assert.Equal(t, "key not found", KeyNotFound{}.Error())
		assert.Equal(t, "invalid or end iterator", InvalidIterator{}.Error())
	})
}
