package migration

import (
	"database/sql"
	"os"
	"testing"
	"testing/fstest"

	_ "github.com/lib/pq"
)

// setupPostgresTestDB opens the database named by ANCHOR_TEST_POSTGRES.
// Example: ANCHOR_TEST_POSTGRES="postgres://user@localhost:5432/anchor_test?sslmode=disable"
func setupPostgresTestDB(t *testing.T) (*sql.DB, func()) {
	connStr := os.Getenv("ANCHOR_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("ANCHOR_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	cleanup := func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS test_entries")
		db.Close()
	}
	return db, cleanup
}

func TestPostgresApply(t *testing.T) {
	db, cleanup := setupPostgresTestDB(t)
	defer cleanup()

	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE test_entries (id SERIAL PRIMARY KEY);")},
		"002_value.sql": {Data: []byte("ALTER TABLE test_entries ADD COLUMN value TEXT;")},
	}
	runner := NewRunner(db, fsys, DialectPostgres)

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("Apply() applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", version)
	}
}
