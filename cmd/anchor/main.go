package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/cli/actions"
	"github.com/julianstephens/anchor/internal/cli/backups"
	"github.com/julianstephens/anchor/internal/cli/settings"
	"github.com/julianstephens/anchor/internal/cli/system"
	"github.com/julianstephens/anchor/internal/config"
	"github.com/julianstephens/anchor/internal/constants"
	apperrors "github.com/julianstephens/anchor/internal/errors"
	"github.com/julianstephens/anchor/internal/logger"
)

var CLI struct {
	Version    kong.VersionFlag
	ConfigFile string `help:"Path to the YAML config file." type:"path" default:"${config_file}" env:"ANCHOR_CONFIG"`
	Store      string `help:"SQLite path, .json file, PostgreSQL connection string or 'keyring'. For PostgreSQL, credentials must NOT be embedded in the connection string."`
	Timezone   string `help:"IANA timezone used to decide the current day."`
	Debug      bool   `help:"Log debug output to stderr."`

	Today    actions.TodayCmd     `cmd:"" help:"Show today's gentle actions." default:"1"`
	Toggle   actions.ToggleCmd    `cmd:"" help:"Check or uncheck actions."`
	Refresh  actions.RefreshCmd   `cmd:"" help:"Draw new suggestions, keeping checked ones."`
	Submit   actions.SubmitCmd    `cmd:"" help:"Finish the day once every action is checked."`
	Dismiss  actions.DismissCmd   `cmd:"" help:"Leave the insights view and return to the actions."`
	Insight  actions.InsightCmd   `cmd:"" help:"Show the current streak and weekly insight."`
	History  actions.HistoryCmd   `cmd:"" help:"Show recent completion history."`
	Checkin  actions.CheckinCmd   `cmd:"" help:"Record how you feel right now."`
	Catalog  actions.CatalogCmd   `cmd:"" help:"List the action catalog or a mood's pool."`
	Export   actions.ExportCmd    `cmd:"" help:"Export stored records as JSON."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI."`
	Init     system.InitCmd       `cmd:"" help:"Initialize anchor storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change settings in the config file."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gentle daily actions picked for how you feel"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(CLI.ConfigFile)
	if err != nil {
		apperrors.Fatal(err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(config.ExpandPath(CLI.ConfigFile)),
		Level:     cfg.LogLevel,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	defer logger.Close()

	appCtx := &cli.Context{Config: cfg, ConfigPath: CLI.ConfigFile}
	command := ctx.Command()

	if needsStore(command) {
		store, err := cli.OpenStore(cfg.Store)
		if err != nil {
			fatal(err)
		}
		defer store.Close()
		appCtx.Store = store

		// init creates the store and doctor reports load failures itself
		if loadsStore(command) {
			if err := store.Load(); err != nil {
				fatal(err)
			}
			if cfg.BackupOnStart && !strings.HasPrefix(command, "tui") {
				appCtx.PerformAutomaticBackup()
			}
		}
	}

	logger.Debug("running command", "command", command)
	if err := ctx.Run(appCtx); err != nil {
		fatal(err)
	}
}

// applyFlags layers explicit command-line flags over the loaded config
func applyFlags(cfg *config.Config) {
	if CLI.Store != "" {
		cfg.Store = config.ExpandPath(CLI.Store)
	}
	if CLI.Timezone != "" {
		cfg.Timezone = CLI.Timezone
	}
	if CLI.Debug {
		cfg.Debug = true
	}
}

// fatal exits without running deferred cleanups, so close the log first
func fatal(err error) {
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, apperrors.Format(err))
	_ = logger.Close()
	os.Exit(1)
}

func needsStore(command string) bool {
	for _, prefix := range []string{"keyring", "catalog", "settings"} {
		if strings.HasPrefix(command, prefix) {
			return false
		}
	}
	return true
}

func loadsStore(command string) bool {
	return !strings.HasPrefix(command, "init") && !strings.HasPrefix(command, "doctor")
}
