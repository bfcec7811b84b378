package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/platform"
	"github.com/julianstephens/simpleclock/internal/screenlock"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	displays, err := ctx.Screens().Displays()
	switch {
	case errors.Is(err, platform.ErrUnsupported):
		fmt.Println("Display detection is not supported on this platform.")
	case err != nil:
		fmt.Printf("Display detection failed: %v\n", err)
	default:
		fmt.Println("Displays:")
		for _, d := range displays {
			marker := " "
			if d.Main {
				marker = "*"
			}
			fmt.Printf("  %s %-12s %s\n", marker, d.ID, d.Name)
		}
	}
	fmt.Println()

	entries, err := screenlock.List(ctx.LockDir())
	if err != nil {
		return fmt.Errorf("failed to read screen locks: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No running saver instances.")
		return nil
	}

	fmt.Println("Running saver instances:")
	for _, e := range entries {
		screen := e.Screen
		if screen == "" {
			screen = "(unbound)"
		}
		fmt.Printf("  %-12s pid %-8d %s\n", screen, e.PID, e.InstanceID)
	}
	return nil
}
