// Package saver drives one clock instance per display.
package saver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/simpleclock/internal/clock"
	"github.com/julianstephens/simpleclock/internal/logger"
	"github.com/julianstephens/simpleclock/internal/models"
)

// State is the lifecycle stage of an Instance.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ScreenResolver identifies displays.
type ScreenResolver interface {
	MainScreen() (string, error)
	CurrentScreen(hint string) (string, error)
}

// Instance is a clock face bound to one display.
type Instance struct {
	ID string

	settings  *models.DisplaySettings
	formatter *clock.Formatter
	screens   ScreenResolver

	hint   string
	screen string
	state  State
	now    func() time.Time
}

type Option func(*Instance)

// WithScreen binds the instance to a display identifier or name.
func WithScreen(id string) Option {
	return func(i *Instance) {
		i.hint = id
	}
}

// WithClock overrides the time source used for the initial frame.
func WithClock(now func() time.Time) Option {
	return func(i *Instance) {
		if now != nil {
			i.now = now
		}
	}
}

// New creates an instance in the Starting state. settings is read on every
// frame, so changes made through it show up on the next tick.
func New(settings *models.DisplaySettings, formatter *clock.Formatter, screens ScreenResolver, opts ...Option) *Instance {
	if settings == nil {
		settings = &models.DisplaySettings{}
	}
	if formatter == nil {
		formatter = clock.NewFormatter()
	}

	i := &Instance{
		ID:        uuid.NewString(),
		settings:  settings,
		formatter: formatter,
		screens:   screens,
		state:     StateStarting,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Instance) State() State {
	return i.state
}

// Screen returns the resolved display ID, falling back to the configured hint.
func (i *Instance) Screen() string {
	if i.screen != "" {
		return i.screen
	}
	return i.hint
}

// Start resolves the bound display and moves the instance to Running, or to
// Stopped when it is restricted to the main screen and sits on another one.
// Displays that cannot be resolved never stop the instance.
func (i *Instance) Start() State {
	if i.state != StateStarting {
		return i.state
	}

	current, currentOK := i.resolveCurrent()
	if currentOK {
		i.screen = current
	}

	if i.settings.MainScreenOnly && currentOK {
		if main, ok := i.resolveMain(); ok && main != current {
			logger.Info("Not the main screen, stopping", "instance", i.ID, "screen", current, "main", main)
			i.transition(StateStopped)
			return i.state
		}
	}

	i.transition(StateRunning)
	return i.state
}

// Stop ends the instance. Stopped is terminal.
func (i *Instance) Stop() {
	if i.state != StateStopped {
		i.transition(StateStopped)
	}
}

// Animate produces the frame for now. It reports false once the instance
// has stopped.
func (i *Instance) Animate(now time.Time) (models.ClockFrame, bool) {
	if i.state == StateStarting {
		i.Start()
	}
	if i.state != StateRunning {
		return models.ClockFrame{}, false
	}
	return i.formatter.Frame(now, *i.settings), true
}

// Run renders an initial frame and then one per tick until ctx is done or
// the tick source closes. A stopped instance returns without rendering.
func (i *Instance) Run(ctx context.Context, src TickSource, render func(models.ClockFrame)) error {
	if i.Start() != StateRunning {
		return nil
	}
	defer i.Stop()

	if frame, ok := i.Animate(i.now()); ok {
		render(frame)
	}

	ticks := src.Ticks(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			frame, running := i.Animate(now)
			if !running {
				return nil
			}
			render(frame)
		}
	}
}

func (i *Instance) resolveCurrent() (string, bool) {
	if i.screens == nil {
		return "", false
	}
	id, err := i.screens.CurrentScreen(i.hint)
	if err != nil || id == "" {
		logger.Debug("Could not resolve current screen", "instance", i.ID, "hint", i.hint, "error", err)
		return "", false
	}
	return id, true
}

func (i *Instance) resolveMain() (string, bool) {
	id, err := i.screens.MainScreen()
	if err != nil || id == "" {
		logger.Debug("Could not resolve main screen", "instance", i.ID, "error", err)
		return "", false
	}
	return id, true
}

func (i *Instance) transition(to State) {
	logger.Debug("Saver state change", "instance", i.ID, "from", i.state, "to", to)
	i.state = to
}
