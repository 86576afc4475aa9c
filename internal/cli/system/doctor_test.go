package system

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/anchor/internal/backup"
	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/config"
	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/storage/jsonfile"
	"github.com/julianstephens/anchor/internal/storage/memory"
	"github.com/julianstephens/anchor/internal/storage/sqlite"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Config: config.Default(), Out: out}, store, out
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _, out := setupTestDoctorDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor failed on healthy database: %v\n%s", err, out.String())
	}
	// missing backups only warn
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected backup warning, got:\n%s", out.String())
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	ctx, store, _ := setupTestDoctorDB(t)

	db := store.GetDB()
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (999)"); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail with a schema newer than the binary")
	}
}

func TestDoctorCmd_IncompleteMigrations(t *testing.T) {
	ctx, store, _ := setupTestDoctorDB(t)

	if _, err := store.GetDB().Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if err := checkSchemaVersion(ctx); err == nil {
		t.Error("checkSchemaVersion should fail when migrations are missing")
	}
}

func TestDoctorCmd_WithBackups(t *testing.T) {
	ctx, _, out := setupTestDoctorDB(t)

	if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backups present: OK") {
		t.Errorf("expected backups OK, got:\n%s", out.String())
	}
}

func TestDoctorCmd_Unreachable(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:  jsonfile.New(filepath.Join(t.TempDir(), "missing.json")),
		Config: config.Default(),
		Out:    out,
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor should fail for an uninitialized store")
	}
	if !strings.Contains(out.String(), "⊘ Schema version: SKIPPED") {
		t.Errorf("expected skipped checks, got:\n%s", out.String())
	}
}

func TestCheckRecords(t *testing.T) {
	store := memory.NewWithData(map[string]string{
		constants.DailyKeys.Current:  `{"date":"2024-03-05","checked":{},"assignedIds":[]}`,
		constants.HistoryKeys.Legacy: `["2024-03-04"]`,
		constants.StatsKeys.Current:  `{}`,
		constants.StatsKeys.Legacy:   `{}`,
	})
	out := &bytes.Buffer{}
	ctx := &cli.Context{Store: store, Config: config.Default(), Out: out}

	if err := checkRecords(ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"✓ " + constants.DailyKeys.Current + ": current\n",
		"⚠ " + constants.HistoryKeys.Current + ": legacy only",
		"✓ " + constants.StatsKeys.Current + ": current (legacy copy present)",
		"⊘ " + constants.StageKeys.Current + ": not written yet",
	}
	for _, w := range want {
		if !strings.Contains(out.String(), w) {
			t.Errorf("output missing %q:\n%s", w, out.String())
		}
	}
}

func TestCheckClockTimezone(t *testing.T) {
	ctx := &cli.Context{Config: config.Default()}
	if err := checkClockTimezone(ctx); err != nil {
		t.Errorf("clock/timezone check failed: %v", err)
	}

	ctx.Config.Timezone = "Nowhere/Land"
	err := checkClockTimezone(ctx)
	if err == nil {
		t.Fatal("expected invalid timezone to fail")
	}
	if !strings.Contains(err.Error(), `invalid timezone "Nowhere/Land"`) {
		t.Errorf("error = %v, want it to name the timezone", err)
	}
}
