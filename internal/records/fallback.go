// Package records persists the daily assignment, completion history,
// completion stats and stage record. Each record lives under a current key
// and may still exist under a legacy key written by older versions.
package records

import (
	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/logger"
	"github.com/julianstephens/anchor/internal/storage"
)

// Source says which key a record was read from
type Source int

const (
	SourceNone Source = iota
	SourceCurrent
	SourceLegacy
)

func (s Source) String() string {
	switch s {
	case SourceCurrent:
		return "current"
	case SourceLegacy:
		return "legacy"
	}
	return "none"
}

// readWithFallback reads keys.Current, or keys.Legacy only when the current
// key is absent. A legacy value that parses is copied to the current key;
// a failed copy is logged and the read still succeeds.
//
// A current value that fails to parse does not fall back to legacy data.
func readWithFallback[T any](kv storage.KV, keys constants.KeyPair, parse func(string) (T, bool)) (T, Source) {
	var zero T

	raw, src := ReadRaw(kv, keys)
	if src == SourceNone {
		return zero, SourceNone
	}

	v, ok := parse(raw)
	if !ok {
		logger.Debug("ignoring unreadable record", "key", keyFor(keys, src))
		return zero, SourceNone
	}

	if src == SourceLegacy {
		if err := kv.Set(keys.Current, raw); err != nil {
			logger.Debug("legacy record migration failed", "from", keys.Legacy, "to", keys.Current, "error", err)
		} else {
			logger.Info("migrated legacy record", "from", keys.Legacy, "to", keys.Current)
		}
	}
	return v, src
}

// ReadRaw returns a record's stored text without parsing or migrating it.
func ReadRaw(r storage.Reader, keys constants.KeyPair) (string, Source) {
	if raw, ok := get(r, keys.Current); ok {
		return raw, SourceCurrent
	}
	if raw, ok := get(r, keys.Legacy); ok {
		return raw, SourceLegacy
	}
	return "", SourceNone
}

// get treats read errors and empty values as missing
func get(r storage.Reader, key string) (string, bool) {
	raw, ok, err := r.Get(key)
	if err != nil {
		logger.Debug("record read failed", "key", key, "error", err)
		return "", false
	}
	return raw, ok && raw != ""
}

func keyFor(keys constants.KeyPair, src Source) string {
	if src == SourceLegacy {
		return keys.Legacy
	}
	return keys.Current
}

// Status reports which keys of a record currently hold a value
type Status struct {
	Keys    constants.KeyPair
	Current bool
	Legacy  bool
}

// Inspect reports key presence for every record without migrating anything.
func Inspect(r storage.Reader) []Status {
	out := make([]Status, 0, len(constants.RecordKeys))
	for _, keys := range constants.RecordKeys {
		_, cur := get(r, keys.Current)
		_, leg := get(r, keys.Legacy)
		out = append(out, Status{Keys: keys, Current: cur, Legacy: leg})
	}
	return out
}
