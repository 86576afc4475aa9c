package constants

import "time"

const (
	AppName            = "anchor"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/anchor"
	DefaultStorePath   = "~/.config/anchor/anchor.db"
	DefaultConfigFile  = "~/.config/anchor/config.yaml"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "anchor-"

	// StoreKeyring selects the Postgres backend with the connection string held in the OS keyring
	StoreKeyring = "keyring"

	// CelebrationDelay is how long the congrats stage is shown before insights
	CelebrationDelay = 950 * time.Millisecond

	// RolloverInterval is how often a live session checks for a calendar-day change
	RolloverInterval = time.Second

	// Suggestion sizing
	DefaultTargetCount  = 3
	ElevatedTargetCount = 5

	// Seed multipliers
	SeedRefreshFactor = 101
	SeedMoodFactor    = 97
	ShuffleStride     = 31
	BackfillStride    = 17

	// MaxStreakDays bounds the streak walk
	MaxStreakDays = 365

	// Insight windows (days)
	InsightWindowDays = 7
)
