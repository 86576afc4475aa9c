package memory

import (
	"errors"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s := New()

	if _, ok, err := s.Get("missing"); ok || err != nil {
		t.Fatalf("Get(missing) = ok %v, err %v; want false, nil", ok, err)
	}

	if err := s.Set("b", "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("a", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := s.Get("a")
	if err != nil || !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v, %v; want \"1\", true, nil", v, ok, err)
	}

	keys, _ := s.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := s.Get("a"); ok {
		t.Error("Get(a) after Remove still present")
	}
}

func TestStoreFailWrites(t *testing.T) {
	s := NewWithData(map[string]string{"k": "v"})
	s.FailWrites(true)

	if err := s.Set("k", "new"); !errors.Is(err, ErrWriteRejected) {
		t.Errorf("Set() error = %v, want ErrWriteRejected", err)
	}
	if err := s.Remove("k"); !errors.Is(err, ErrWriteRejected) {
		t.Errorf("Remove() error = %v, want ErrWriteRejected", err)
	}
	if v, _, _ := s.Get("k"); v != "v" {
		t.Errorf("Get(k) = %q, want unchanged \"v\"", v)
	}

	s.FailWrites(false)
	if err := s.Set("k", "new"); err != nil {
		t.Errorf("Set() after re-enabling writes error = %v", err)
	}
}

func TestStoreFailReads(t *testing.T) {
	s := NewWithData(map[string]string{"k": "v"})
	s.FailReads(true)
	if _, _, err := s.Get("k"); err == nil {
		t.Error("Get() with failing reads returned nil error")
	}
}
