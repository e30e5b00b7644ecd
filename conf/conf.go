package conf

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// TableConf - Is a struct to be passed in the call to NewFromConf of the hash tables and contains configuration
// that affects sizing and rehashing.
//   - Capacity is the initial number of slots or the requested number of buckets, zero means the table default
//   - MaxLoadFactor is the load factor that triggers a rehash in open addressing, zero means DefaultMaxLoadFactor
//   - Logger receives structural events such as rehashes, nil means the module wide logger
type TableConf struct {
	Capacity      int64       `yaml:"capacity"`
	MaxLoadFactor float64     `yaml:"maxLoadFactor"`
	Logger        *zap.Logger `yaml:"-"`
}

// Load - Decodes a TableConf from YAML and validates it.
//
// Example:
//
//	capacity: 64
//	maxLoadFactor: 0.75
func Load(r io.Reader) (tableConf TableConf, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(&tableConf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// an empty document gives defaults
			err = nil
			return
		}
		err = errors.Wrap(err, "error while decoding table configuration")
		return
	}

	err = tableConf.Validate()

	return
}

// Validate - Returns an error if any of the configured values are out of range
func (T TableConf) Validate() error {
	if T.Capacity < 0 {
		return errors.Errorf("capacity must be zero or a positive value, got %d", T.Capacity)
	}
	if T.MaxLoadFactor < 0 || T.MaxLoadFactor >= 1 {
		return errors.Errorf("maxLoadFactor must be in the range [0, 1), got %v", T.MaxLoadFactor)
	}

	return nil
}

// CapacityOr - Returns the configured capacity or def if none was configured
func (T TableConf) CapacityOr(def int64) int64 {
	if T.Capacity <= 0 {
		return def
	}
	return T.Capacity
}

// LoadFactor - Returns the configured max load factor or DefaultMaxLoadFactor if none was configured
func (T TableConf) LoadFactor() float64 {
	if T.MaxLoadFactor <= 0 {
		return DefaultMaxLoadFactor
	}
	return T.MaxLoadFactor
}
