package assoctables

import (
	"testing"

	"github.com/gostonefire/assoctables/internal/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetLogger(t *testing.T) {
	t.Run("replaces the module wide logger", func(t *testing.T) {
		// Prepare
		l := zap.NewExample()
		defer SetLogger(nil)

		// Execute
		SetLogger(l)

		// Check
		assert.Same(t, l, log.Logger(), "module wide logger replaced")
		assert.Same(t, l, log.OrDefault(nil), "used when no table logger is given")
	})
}
