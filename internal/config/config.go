// Package config resolves runtime settings from built-in defaults, the YAML
// config file and ANCHOR_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/utils"
)

const (
	EnvStore            = "ANCHOR_STORE"
	EnvTimezone         = "ANCHOR_TIMEZONE"
	EnvDebug            = "ANCHOR_DEBUG"
	EnvCelebrationDelay = "ANCHOR_CELEBRATION_DELAY"
	EnvRolloverInterval = "ANCHOR_ROLLOVER_INTERVAL"
	EnvBackupOnStart    = "ANCHOR_BACKUP_ON_START"
	EnvLogLevel         = "ANCHOR_LOG_LEVEL"
)

// Config models config.yaml.
type Config struct {
	Store            string        `yaml:"store"`
	Timezone         string        `yaml:"timezone"`
	Debug            bool          `yaml:"debug"`
	LogLevel         string        `yaml:"log_level"`
	CelebrationDelay time.Duration `yaml:"celebration_delay"`
	RolloverInterval time.Duration `yaml:"rollover_interval"`
	BackupOnStart    bool          `yaml:"backup_on_start"`
}

func Default() Config {
	return Config{
		Store:            constants.DefaultStorePath,
		Timezone:         "Local",
		CelebrationDelay: constants.CelebrationDelay,
		RolloverInterval: constants.RolloverInterval,
	}
}

// Load builds the config from defaults, the file at path (missing is fine)
// and the environment. Paths have ~ expanded.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.Store = ExpandPath(cfg.Store)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile returns the defaults overlaid with the file at path, ignoring
// the environment. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(ExpandPath(path))
	switch {
	case err == nil:
		if err := cfg.merge(data); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays the non-zero fields set in a YAML document
func (c *Config) merge(data []byte) error {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Store != "" {
		c.Store = file.Store
	}
	if file.Timezone != "" {
		c.Timezone = file.Timezone
	}
	if file.Debug {
		c.Debug = true
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.CelebrationDelay != 0 {
		c.CelebrationDelay = file.CelebrationDelay
	}
	if file.RolloverInterval != 0 {
		c.RolloverInterval = file.RolloverInterval
	}
	if file.BackupOnStart {
		c.BackupOnStart = true
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Store = getEnv(EnvStore, c.Store)
	c.Timezone = getEnv(EnvTimezone, c.Timezone)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.Debug = getBoolEnv(EnvDebug, c.Debug)
	c.BackupOnStart = getBoolEnv(EnvBackupOnStart, c.BackupOnStart)

	var err error
	if c.CelebrationDelay, err = getDurationEnv(EnvCelebrationDelay, c.CelebrationDelay); err != nil {
		return err
	}
	if c.RolloverInterval, err = getDurationEnv(EnvRolloverInterval, c.RolloverInterval); err != nil {
		return err
	}
	return nil
}

// Validate ensures the timezone loads and the durations are positive.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Store) == "" {
		return fmt.Errorf("config.store is required")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("config.timezone %q is not a valid IANA timezone", c.Timezone)
	}
	if c.CelebrationDelay <= 0 {
		return fmt.Errorf("config.celebration_delay must be positive, got %s", c.CelebrationDelay)
	}
	if c.RolloverInterval <= 0 {
		return fmt.Errorf("config.rollover_interval must be positive, got %s", c.RolloverInterval)
	}
	return nil
}

// Location returns the configured timezone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := utils.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Save writes the config as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
// Connection strings and other non-path values pass through unchanged.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
