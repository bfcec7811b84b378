package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/clock"
	"github.com/julianstephens/simpleclock/internal/platform"
	"github.com/julianstephens/simpleclock/internal/prefs"
	"github.com/julianstephens/simpleclock/internal/screenlock"
)

type DoctorCmd struct{}

// skipError marks a check that does not apply on this system.
type skipError string

func (e skipError) Error() string { return string(e) }

type check struct {
	name  string
	fn    func(*cli.Context) error
	needs bool // requires a reachable database
	warn  bool // failures are reported but do not fail the run
}

var checks = []check{
	{name: "Schema version", fn: checkSchemaVersion, needs: true},
	{name: "Migrations complete", fn: checkMigrationsComplete, needs: true},
	{name: "Settings readable", fn: checkSettings, needs: true},
	{name: "Time zone abbreviation", fn: checkTimeZone, warn: true},
	{name: "Screen detection", fn: checkScreens, warn: true},
	{name: "Screen locks", fn: checkLocks, warn: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needs && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.fn(ctx)
		var skip skipError
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case errors.As(err, &skip):
			fmt.Printf("⊘ %s: SKIPPED (%s)\n", c.name, skip)
		case c.warn:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	status, err := ctx.Store.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", status.Current, status.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	status, err := ctx.Store.SchemaStatus()
	if err != nil {
		return err
	}
	if !status.UpToDate() {
		return fmt.Errorf("%d pending migration(s), run 'simpleclock migrate'", status.Latest-status.Current)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	_, err := prefs.New(ctx.Store).Load()
	return err
}

func checkTimeZone(ctx *cli.Context) error {
	loc := time.Local
	if ctx.Formatter != nil {
		loc = ctx.Formatter.Location()
	}
	if clock.ZoneAbbreviation(time.Now().In(loc)) == "" {
		return fmt.Errorf("zone %q has no abbreviation; the time zone suffix will be hidden", loc.String())
	}
	return nil
}

func checkScreens(ctx *cli.Context) error {
	screens := ctx.Screens()
	main, err := screens.MainScreen()
	if errors.Is(err, platform.ErrUnsupported) {
		return skipError("not supported on " + ctx.Platform.Name())
	}
	if err != nil {
		return fmt.Errorf("main display: %w (main screen only will keep every instance running)", err)
	}

	current, err := screens.CurrentScreen(ctx.Screen)
	if err != nil {
		return fmt.Errorf("bound display: %w", err)
	}
	if current != main {
		fmt.Printf("   bound to %s, main display is %s\n", current, main)
	}
	return nil
}

func checkLocks(ctx *cli.Context) error {
	if ctx.ConfigDir == "" {
		return skipError("no config directory")
	}
	_, err := screenlock.List(ctx.LockDir())
	return err
}
