package cli

import (
	"path/filepath"

	"github.com/julianstephens/simpleclock/internal/clock"
	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/platform"
	"github.com/julianstephens/simpleclock/internal/prefs"
	"github.com/julianstephens/simpleclock/internal/screenlock"
	"github.com/julianstephens/simpleclock/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Formatter *clock.Formatter
	Platform  platform.Platform
	// Screen is the display this process is bound to; empty means unbound.
	Screen string
	// ConfigDir holds logs and screen lockfiles.
	ConfigDir string

	prefs *prefs.Store
}

// Prefs opens the settings store on first use. An error here means there is
// no usable backing store.
func (c *Context) Prefs() (*prefs.Store, error) {
	if c.prefs != nil {
		return c.prefs, nil
	}
	p, err := prefs.Open(c.Store)
	if err != nil {
		return nil, err
	}
	c.prefs = p
	return p, nil
}

// LoadSettings opens the store and reads the display flags once.
func (c *Context) LoadSettings() (*prefs.Store, *models.DisplaySettings, error) {
	p, err := c.Prefs()
	if err != nil {
		return nil, nil, err
	}
	settings, err := p.Load()
	if err != nil {
		return nil, nil, err
	}
	return p, &settings, nil
}

// Screens returns the display resolver for the current platform.
func (c *Context) Screens() platform.ScreenService {
	if c.Platform == nil {
		c.Platform = platform.Current()
	}
	return c.Platform.Screens()
}

func (c *Context) LockDir() string {
	return screenlock.Dir(c.ConfigDir)
}

// ConfigDirFor returns the directory logs and lockfiles live in for a store
// config. PostgreSQL stores keep them next to the default SQLite path.
func ConfigDirFor(config string) string {
	if storage.IsPostgres(config) || config == "" {
		return filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath))
	}
	return filepath.Dir(storage.ExpandPath(config))
}
