package settings

import (
	"fmt"
	"time"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/config"
)

// SettingsCmd shows the effective config or edits the config file
type SettingsCmd struct {
	List bool `help:"List current settings."`

	SetStore            *string        `name:"set-store" help:"Store path, connection string or 'keyring'."`
	SetTimezone         *string        `name:"set-timezone" help:"IANA timezone, or Local."`
	SetCelebrationDelay *time.Duration `name:"set-celebration-delay" help:"How long the congratulations stay up, e.g. 950ms."`
	SetRolloverInterval *time.Duration `name:"set-rollover-interval" help:"How often the TUI checks for a new day."`
	SetBackupOnStart    *bool          `name:"set-backup-on-start" help:"Back up the store before each command."`
	SetDebug            *bool          `name:"set-debug" help:"Always log debug output."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.List {
		c.list(ctx)
		return nil
	}

	if ctx.ConfigPath == "" {
		return fmt.Errorf("no config file path set")
	}
	// start from the file alone so environment overrides are not persisted
	cfg, err := config.LoadFile(ctx.ConfigPath)
	if err != nil {
		return err
	}

	updated := false
	if c.SetStore != nil {
		cfg.Store = *c.SetStore
		updated = true
	}
	if c.SetTimezone != nil {
		cfg.Timezone = *c.SetTimezone
		updated = true
	}
	if c.SetCelebrationDelay != nil {
		cfg.CelebrationDelay = *c.SetCelebrationDelay
		updated = true
	}
	if c.SetRolloverInterval != nil {
		cfg.RolloverInterval = *c.SetRolloverInterval
		updated = true
	}
	if c.SetBackupOnStart != nil {
		cfg.BackupOnStart = *c.SetBackupOnStart
		updated = true
	}
	if c.SetDebug != nil {
		cfg.Debug = *c.SetDebug
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or --set-* flags to update them.")
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return err
	}
	ctx.Printf("Settings saved to %s\n", config.ExpandPath(ctx.ConfigPath))
	return nil
}

func (c *SettingsCmd) list(ctx *cli.Context) {
	cfg := ctx.Config
	ctx.Println("Current Settings:")
	ctx.Printf("  Config File:        %s\n", config.ExpandPath(ctx.ConfigPath))
	ctx.Printf("  Store:              %s\n", displayStore(cfg.Store))
	ctx.Printf("  Timezone:           %s\n", cfg.Timezone)
	ctx.Printf("  Celebration Delay:  %s\n", cfg.CelebrationDelay)
	ctx.Printf("  Rollover Interval:  %s\n", cfg.RolloverInterval)
	ctx.Printf("  Backup On Start:    %v\n", cfg.BackupOnStart)
	ctx.Printf("  Debug:              %v\n", cfg.Debug)
}
