package storage

import "errors"

// ErrNotInitialized is returned by Load when the backing store has not been created yet
var ErrNotInitialized = errors.New("storage not initialized, run 'anchor init' first")

// Reader reads opaque string values by key.
// A missing key is reported as ok=false with a nil error.
type Reader interface {
	Get(key string) (value string, ok bool, err error)
}

// Writer stores and removes opaque string values by key
type Writer interface {
	Set(key, value string) error
	Remove(key string) error
}

// KV is a flat string key-value store
type KV interface {
	Reader
	Writer
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	KV
	// Keys returns every stored key in ascending order
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
