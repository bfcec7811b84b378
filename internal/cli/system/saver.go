package system

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/logger"
	"github.com/julianstephens/simpleclock/internal/saver"
	"github.com/julianstephens/simpleclock/internal/screenlock"
	"github.com/julianstephens/simpleclock/internal/tui"
)

type SaverCmd struct{}

func (c *SaverCmd) Run(ctx *cli.Context) error {
	store, settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	instance := saver.New(settings, ctx.Formatter, ctx.Screens(), saver.WithScreen(ctx.Screen))
	if instance.Start() == saver.StateRunning {
		lock, err := screenlock.Acquire(ctx.LockDir(), instance.Screen(), instance.ID)
		if err != nil {
			if errors.Is(err, screenlock.ErrHeld) {
				return fmt.Errorf("%w; use --screen to pick another display", err)
			}
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("Failed to release screen lock", "error", err)
			}
		}()
	}

	p := tea.NewProgram(tui.NewModel(store, settings, instance), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("saver exited: %w", err)
	}
	return nil
}
