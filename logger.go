package assoctables

import (
	"github.com/gostonefire/assoctables/internal/log"
	"go.uber.org/zap"
)

// SetLogger - Sets the logger the hash tables report structural events to (rehash, prime rounding, reorg) when
// no logger is given in their conf.TableConf. Passing nil goes back to the global zap logger, which is a no-op
// unless replaced with zap.ReplaceGlobals.
func SetLogger(l *zap.Logger) {
	log.SetLogger(l)
}
