package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/prefs"
	"github.com/julianstephens/simpleclock/internal/saver"
	"github.com/julianstephens/simpleclock/internal/tui/components/clockface"
	"github.com/julianstephens/simpleclock/internal/tui/components/settings"
)

type Model struct {
	store         *prefs.Store
	settings      *models.DisplaySettings
	instance      *saver.Instance
	interval      time.Duration
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	clockFace     clockface.Model
	settingsModel settings.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	formError     string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the saver program around an already loaded settings value.
// The same pointer is shared with the instance, so toggles show up on the
// next frame.
func NewModel(store *prefs.Store, displaySettings *models.DisplaySettings, instance *saver.Instance) Model {
	cf := clockface.New()
	if frame, ok := instance.Animate(time.Now()); ok {
		cf.SetFrame(frame)
	}

	return Model{
		store:         store,
		settings:      displaySettings,
		instance:      instance,
		interval:      constants.RefreshInterval,
		state:         constants.StateSaver,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		clockFace:     cf,
		settingsModel: settings.New(*displaySettings, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	if m.instance.State() != saver.StateRunning {
		return nil
	}
	return clockface.Tick(m.interval)
}

func (m Model) State() constants.SessionState {
	return m.state
}
