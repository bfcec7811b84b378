package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/simpleclock/internal/cli"
	clockcmd "github.com/julianstephens/simpleclock/internal/cli/clock"
	"github.com/julianstephens/simpleclock/internal/cli/settings"
	"github.com/julianstephens/simpleclock/internal/cli/system"
	"github.com/julianstephens/simpleclock/internal/clock"
	"github.com/julianstephens/simpleclock/internal/constants"
	apperrors "github.com/julianstephens/simpleclock/internal/errors"
	"github.com/julianstephens/simpleclock/internal/keyring"
	"github.com/julianstephens/simpleclock/internal/logger"
	"github.com/julianstephens/simpleclock/internal/platform"
	_ "github.com/julianstephens/simpleclock/internal/platform/darwin"
	_ "github.com/julianstephens/simpleclock/internal/platform/linux"
	"github.com/julianstephens/simpleclock/internal/storage"
	"github.com/julianstephens/simpleclock/internal/storage/postgres"
	"github.com/julianstephens/simpleclock/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use .pgpass or the OS keyring instead." type:"string" default:"${default_config}" env:"SIMPLECLOCK_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Screen  string `help:"Display the clock is bound to (ID or name)." env:"SIMPLECLOCK_SCREEN"`
	Locale  string `help:"Locale for the date line, e.g. en_US, de_DE." default:"${default_locale}" env:"SIMPLECLOCK_LOCALE"`

	Saver    system.SaverCmd      `cmd:"" help:"Run the full-screen clock." default:"1"`
	Now      clockcmd.NowCmd      `cmd:"" help:"Print the current clock face."`
	Stardate clockcmd.StardateCmd `cmd:"" help:"Print a stardate."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage display settings."`
	Status   system.StatusCmd     `cmd:"" help:"List displays and running saver instances."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Init     system.InitCmd       `cmd:"" help:"Initialize simpleclock storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Backup   struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Create a backup of the settings database."`
		List    system.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Restore the settings database from a backup."`
	} `cmd:"" help:"Manage SQLite settings backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage the connection string kept in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A full-screen terminal clock with optional stardate"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"default_locale": constants.DefaultLocale,
		},
	)

	config, fromKeyring, keyringErr := resolveConfig(CLI.Config)
	configDir := cli.ConfigDirFor(config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	if keyringErr != nil {
		logger.Debug("Keyring lookup failed, using SQLite", "error", keyringErr)
	}

	store, err := newStore(config, fromKeyring)
	if err != nil {
		apperrors.Fatalf("failed to open settings store: %w", err)
	}
	defer store.Close()

	if !clock.SupportedLocale(CLI.Locale) {
		logger.Warn("Unsupported locale, falling back", "locale", CLI.Locale, "fallback", constants.DefaultLocale)
	}

	appCtx := &cli.Context{
		Store:     store,
		Formatter: clock.NewFormatter(clock.WithLocale(CLI.Locale)),
		Platform:  platform.Current(),
		Screen:    CLI.Screen,
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// resolveConfig swaps the default SQLite path for a keyring connection string
// when one is stored. An explicit --config always wins. A keyring that cannot
// be reached is returned as lookupErr and the SQLite default is kept; it is
// returned rather than logged because logging is not set up yet.
func resolveConfig(config string) (resolved string, fromKeyring bool, lookupErr error) {
	if config != constants.DefaultConfigPath {
		return config, false, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return config, false, nil
		}
		return config, false, err
	}
	return connStr, true, nil
}

// newStore picks the provider for config. Connection strings from the
// keyring may carry a password; ones given on the command line may not.
func newStore(config string, fromKeyring bool) (storage.Provider, error) {
	if !storage.IsPostgres(config) {
		return sqlite.NewStore(storage.ExpandPath(config)), nil
	}

	if _, err := postgres.ValidateConnString(config); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) && fromKeyring {
			return postgres.New(config), nil
		}
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; use 'simpleclock keyring set' or a .pgpass file")
		}
		return nil, err
	}
	return postgres.New(config), nil
}
