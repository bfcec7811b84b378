package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/simpleclock/internal/backup"
	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/prefs"
	"github.com/julianstephens/simpleclock/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Back up and delete the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if storage.IsPostgres(ctx.Store.GetConfigPath()) {
			return fmt.Errorf("--force is only supported for SQLite storage")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			saved, err := backup.NewManager(dbPath).Create()
			if err != nil {
				return fmt.Errorf("failed to back up existing database: %w", err)
			}
			fmt.Printf("Backed up existing database to: %s\n", saved)
			// close first so the file can be removed
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized simpleclock storage at: %s\n", ctx.Store.GetConfigPath())

	// Defaults are registered, not written; unset flags read as their default.
	settings, err := prefs.New(ctx.Store).Load()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	fmt.Println("Display settings:")
	for _, flag := range models.AllFlags {
		fmt.Printf("  %-20s %v\n", flag.Label()+":", settings.Get(flag))
	}
	return nil
}
