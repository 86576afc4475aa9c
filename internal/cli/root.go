package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/anchor/internal/backup"
	"github.com/julianstephens/anchor/internal/config"
	"github.com/julianstephens/anchor/internal/constants"
	apperrors "github.com/julianstephens/anchor/internal/errors"
	"github.com/julianstephens/anchor/internal/keyring"
	"github.com/julianstephens/anchor/internal/logger"
	"github.com/julianstephens/anchor/internal/session"
	"github.com/julianstephens/anchor/internal/storage"
	"github.com/julianstephens/anchor/internal/storage/jsonfile"
	"github.com/julianstephens/anchor/internal/storage/postgres"
	"github.com/julianstephens/anchor/internal/storage/sqlite"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
	// ConfigPath is the YAML file the config was read from
	ConfigPath string

	// Clock overrides the session clock; nil uses the configured timezone
	Clock session.Clock
	// Out receives command output; nil means stdout
	Out io.Writer
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

func (c *Context) clock() session.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return session.SystemClock(c.Config.Location())
}

// Now returns the current time in the configured timezone
func (c *Context) Now() time.Time {
	return c.clock().Now()
}

// NewSession returns a session over the store using the configured clock and
// celebration delay. Callers must Close it.
func (c *Context) NewSession(opts ...session.Option) *session.Session {
	delay := c.Config.CelebrationDelay
	if delay <= 0 {
		delay = constants.CelebrationDelay
	}
	base := []session.Option{session.WithClock(c.clock()), session.WithCelebrationDelay(delay)}
	return session.New(c.Store, append(base, opts...)...)
}

// IsFileStore reports whether the store lives in a local file that can be
// backed up.
func (c *Context) IsFileStore() bool {
	return IsFileTarget(c.Store.GetConfigPath())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsFileStore() {
		logger.Debug("skipping automatic backup for non-file store")
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// IsFileTarget reports whether a store target names a local file
func IsFileTarget(target string) bool {
	return target != "" && target != "memory" && target != constants.StoreKeyring &&
		target != "postgresql" && !postgres.IsConnString(target)
}

// OpenStore picks a backend for target. Postgres URLs and DSNs select the
// Postgres store, "keyring" selects Postgres with the connection string held
// in the OS keyring, a .json suffix selects the JSON file store and anything
// else is a SQLite database path. The store is not loaded.
func OpenStore(target string) (storage.Provider, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == "":
		return nil, fmt.Errorf("no store configured")
	case target == constants.StoreKeyring:
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, apperrors.WithHint(
				fmt.Errorf("failed to read connection string from keyring: %w", err),
				"store one with 'anchor keyring set <connection-string>'",
			)
		}
		return openPostgres(connStr, true)
	case postgres.IsConnString(target):
		return openPostgres(target, false)
	case strings.EqualFold(filepath.Ext(target), ".json"):
		return jsonfile.New(config.ExpandPath(target)), nil
	default:
		return sqlite.New(config.ExpandPath(target)), nil
	}
}

// openPostgres validates connStr before building the store. A password is
// tolerated only when the string came from the keyring.
func openPostgres(connStr string, fromKeyring bool) (storage.Provider, error) {
	if _, err := postgres.ValidateConnString(connStr); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			if fromKeyring {
				return postgres.New(connStr), nil
			}
			return nil, apperrors.WithHint(err,
				"remove the password and use PGPASSWORD, a .pgpass file or 'anchor keyring set'")
		}
		return nil, err
	}
	return postgres.New(connStr), nil
}
