// Package memory is an in-process storage.Provider, used by tests and as a
// scratch store when nothing should touch disk.
package memory

import (
	"errors"
	"sort"
	"sync"

	"github.com/julianstephens/anchor/internal/storage"
)

// ErrWriteRejected is returned by Set and Remove while writes are failing
var ErrWriteRejected = errors.New("memory store: write rejected")

type Store struct {
	mu         sync.RWMutex
	data       map[string]string
	failWrites bool
	failReads  bool
}

var _ storage.Provider = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

// NewWithData returns a store pre-populated with a copy of data
func NewWithData(data map[string]string) *Store {
	s := New()
	for k, v := range data {
		s.data[k] = v
	}
	return s
}

func (s *Store) Init() error  { return nil }
func (s *Store) Load() error  { return nil }
func (s *Store) Close() error { return nil }

func (s *Store) GetConfigPath() string { return "memory" }

// FailWrites makes subsequent Set and Remove calls fail, simulating a full or
// read-only store.
func (s *Store) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// FailReads makes subsequent Get calls fail
func (s *Store) FailReads(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failReads = fail
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failReads {
		return "", false, errors.New("memory store: read rejected")
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrWriteRejected
	}
	s.data[key] = value
	return nil
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrWriteRejected
	}
	delete(s.data, key)
	return nil
}

func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
