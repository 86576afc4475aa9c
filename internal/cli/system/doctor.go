package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/anchor/internal/backup"
	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/records"
	"github.com/julianstephens/anchor/internal/utils"
)

// schemaVersioned is implemented by the SQL-backed stores
type schemaVersioned interface {
	SchemaVersion() (int, error)
	LatestSchemaVersion() (int, error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	fail := func(name string, err error) {
		ctx.Printf("❌ %s: FAIL\n", name)
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	}

	reachable := true
	if err := checkStoreReachable(ctx); err != nil {
		fail("Store reachable", err)
		reachable = false
	} else {
		ctx.Printf("✓ Store reachable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	if !reachable {
		ctx.Println("⊘ Schema version: SKIPPED (store not reachable)")
		ctx.Println("⊘ Records: SKIPPED (store not reachable)")
	} else {
		if err := checkSchemaVersion(ctx); err != nil {
			fail("Schema version", err)
		} else {
			ctx.Println("✓ Schema version: OK")
		}
		if err := checkRecords(ctx); err != nil {
			fail("Records", err)
		}
	}

	if ctx.IsFileStore() {
		if err := checkBackupsPresent(ctx); err != nil {
			ctx.Println("⚠ Backups present: WARNING")
			ctx.Printf("   %v\n", err)
		} else {
			ctx.Println("✓ Backups present: OK")
		}
	} else {
		ctx.Println("⊘ Backups present: SKIPPED (not a file store)")
	}

	if err := checkClockTimezone(ctx); err != nil {
		fail("Clock/timezone", err)
	} else {
		ctx.Println("✓ Clock/timezone: OK")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	vs, ok := ctx.Store.(schemaVersioned)
	if !ok {
		// file and memory stores carry no schema
		return nil
	}
	current, err := vs.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := vs.LatestSchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

// checkRecords prints where each record lives. Only legacy data is fine, it
// is migrated on the next load.
func checkRecords(ctx *cli.Context) error {
	for _, st := range records.Inspect(ctx.Store) {
		switch {
		case st.Current && st.Legacy:
			ctx.Printf("✓ %s: current (legacy copy present)\n", st.Keys.Current)
		case st.Current:
			ctx.Printf("✓ %s: current\n", st.Keys.Current)
		case st.Legacy:
			ctx.Printf("⚠ %s: legacy only (%s), migrated on next load\n", st.Keys.Current, st.Keys.Legacy)
		default:
			ctx.Printf("⊘ %s: not written yet\n", st.Keys.Current)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'anchor backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now, err := utils.NowInTimezone(ctx.Config.Timezone)
	if err != nil {
		return err
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
