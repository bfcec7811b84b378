package clock

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/saver"
	"github.com/julianstephens/simpleclock/internal/stardate"
)

var output io.Writer = os.Stdout

type NowCmd struct {
	Watch    bool          `help:"Keep printing the clock face every refresh interval."`
	Interval time.Duration `help:"Refresh interval for --watch." default:"5s"`
}

func (c *NowCmd) Run(ctx *cli.Context) error {
	_, settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	instance := saver.New(settings, ctx.Formatter, ctx.Screens(), saver.WithScreen(ctx.Screen))
	if !c.Watch {
		frame, ok := instance.Animate(time.Now())
		if !ok {
			fmt.Fprintln(output, "Not the main screen; nothing to show.")
			return nil
		}
		printFrame(frame)
		return nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if instance.Start() != saver.StateRunning {
		fmt.Fprintln(output, "Not the main screen; nothing to show.")
		return nil
	}
	return instance.Run(runCtx, saver.NewTicker(c.Interval), func(frame models.ClockFrame) {
		printFrame(frame)
		fmt.Fprintln(output)
	})
}

func printFrame(frame models.ClockFrame) {
	fmt.Fprintln(output, frame.Time)
	fmt.Fprintln(output, frame.Date)
	if frame.Stardate != "" {
		fmt.Fprintln(output, frame.Stardate)
	}
}

type StardateCmd struct {
	At string `help:"Instant to convert (RFC3339). Defaults to now."`
}

func (c *StardateCmd) Run(ctx *cli.Context) error {
	t := time.Now()
	if ctx.Formatter != nil {
		t = t.In(ctx.Formatter.Location())
	}
	if c.At != "" {
		parsed, err := time.Parse(constants.TimestampFormat, c.At)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: expected RFC3339 such as 2024-01-01T00:00:00Z", c.At)
		}
		t = parsed
	}

	fmt.Fprintln(output, stardate.Compute(t))
	return nil
}
