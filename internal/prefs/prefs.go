// Package prefs is the settings store: it registers defaults for the display
// flags, loads them from a preference sink and writes single flags back.
package prefs

import (
	"fmt"

	"github.com/julianstephens/simpleclock/internal/logger"
	"github.com/julianstephens/simpleclock/internal/migration"
	"github.com/julianstephens/simpleclock/internal/models"
)

// Sink is the key/value persistence the store reads from and writes to.
type Sink interface {
	Init() error
	Load() error
	GetSettingValues() (map[string]string, error)
	SaveSetting(key, value string) error
}

// migrator is implemented by sinks with a versioned schema.
type migrator interface {
	SchemaStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)
}

// Store maps display flags to persisted booleans.
type Store struct {
	sink     Sink
	defaults map[models.Flag]bool
}

// Open prepares the sink, creating it if it does not exist yet and bringing
// an older schema up to date. A returned error means there is no usable
// backing store; callers treat it as fatal.
func Open(sink Sink) (*Store, error) {
	if err := sink.Load(); err != nil {
		logger.Debug("Settings store not loadable, initializing", "error", err)
		if initErr := sink.Init(); initErr != nil {
			return nil, fmt.Errorf("failed to create settings store: %w", initErr)
		}
		return New(sink), nil
	}

	if m, ok := sink.(migrator); ok {
		if err := upgrade(m); err != nil {
			return nil, fmt.Errorf("failed to upgrade settings store: %w", err)
		}
	}
	return New(sink), nil
}

func upgrade(m migrator) error {
	status, err := m.SchemaStatus()
	if err != nil {
		return err
	}
	if status.Current >= status.Latest {
		return nil
	}
	applied, err := m.Migrate(func(msg string) { logger.Info(msg) })
	if err != nil {
		return err
	}
	logger.Info("Settings store upgraded", "from", status.Current, "applied", applied)
	return nil
}

// New wraps an already opened sink and registers the stock defaults.
func New(sink Sink) *Store {
	s := &Store{sink: sink, defaults: make(map[models.Flag]bool)}
	s.Register(models.DefaultSettings())
	return s
}

// Register records defaults used for flags that have never been saved.
// Later registrations override earlier ones per flag.
func (s *Store) Register(defaults map[models.Flag]bool) {
	for flag, value := range defaults {
		s.defaults[flag] = value
	}
}

// Load reads every flag, applying registered defaults to absent keys.
func (s *Store) Load() (models.DisplaySettings, error) {
	values, err := s.sink.GetSettingValues()
	if err != nil {
		return models.DisplaySettings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return models.MapToSettings(values, s.defaults)
}

// Save writes a single flag. It returns only after the sink committed it.
func (s *Store) Save(flag models.Flag, value bool) error {
	if !flag.Valid() {
		return fmt.Errorf("unknown setting %q", flag)
	}
	if err := s.sink.SaveSetting(string(flag), models.FormatBool(value)); err != nil {
		return err
	}
	logger.Info("Setting saved", "flag", flag, "value", value)
	return nil
}

// Apply sets a flag on the in-memory settings and persists it. The in-memory
// value only changes when the write succeeded.
func (s *Store) Apply(settings *models.DisplaySettings, flag models.Flag, value bool) error {
	if err := s.Save(flag, value); err != nil {
		return err
	}
	settings.Set(flag, value)
	return nil
}
