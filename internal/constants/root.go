package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "simpleclock"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/simpleclock/simpleclock.db"
	DefaultLocale      = "en_US"
	Version            = "v1.1.0"

	// RefreshInterval is how often a running saver recomputes its frame
	RefreshInterval = 5 * time.Second

	// StardateDivisor approximates 1/1000 of a year in seconds
	StardateDivisor = 315576.0

	// Lockfile constants
	LockDirName      = "instances"
	LockFilePrefix   = "saver-"
	LockFileSuffix   = ".lock"
	UnboundScreenKey = "unbound"
)

// Session States
const (
	StateSaver SessionState = iota
	StateSettings
	StateEditSettings
)
