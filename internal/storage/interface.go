package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/simpleclock/internal/migration"
)

// Provider persists display preferences as key/value rows.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettingValues() (map[string]string, error)
	// SaveSetting writes one key and commits before returning.
	SaveSetting(key, value string) error

	// Schema
	SchemaStatus() (migration.Status, error)
	// Migrate applies pending migrations, reporting progress through logFn.
	Migrate(logFn func(string)) (int, error)

	// Utils
	GetConfigPath() string
}

// IsPostgres reports whether config is a PostgreSQL connection string (URL or
// key/value DSN) rather than a SQLite file path.
func IsPostgres(config string) bool {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return true
	}
	return strings.Contains(config, "host=") && strings.Contains(config, " ")
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
