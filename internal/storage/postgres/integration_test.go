package postgres

import (
	"os"
	"testing"
)

// TestStore_Integration runs against a real database.
// Set ANCHOR_TEST_POSTGRES to run, e.g.
// ANCHOR_TEST_POSTGRES="postgres://anchor@localhost:5432/anchor_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("ANCHOR_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("ANCHOR_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	const key = "anchor.test.integration"
	defer store.Remove(key)

	if err := store.Set(key, "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(key, "second"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	v, ok, err := store.Get(key)
	if err != nil || !ok || v != "second" {
		t.Errorf("Get() = %q, %v, %v; want \"second\", true, nil", v, ok, err)
	}

	if err := store.Remove(key); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := store.Get(key); ok {
		t.Error("Get() after Remove still found key")
	}
}
