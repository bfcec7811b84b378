package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/logger"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/saver"
	"github.com/julianstephens/simpleclock/internal/tui/components/clockface"
	"github.com/julianstephens/simpleclock/internal/tui/components/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clockFace.SetSize(msg.Width, msg.Height)
		m.settingsModel.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case clockface.TickMsg:
		return m, m.animate(time.Time(msg))
	}

	if m.state == constants.StateEditSettings {
		return m, m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settings.ToggleMsg:
		m.apply(msg.Flag, msg.Value)
		return m, nil

	case settings.EditSettingsMsg:
		m.settingsForm = NewSettingsFormModel(*m.settings)
		m.form = NewSettingsForm(m.settingsForm)
		m.state = constants.StateEditSettings
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.instance.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateSaver {
				m.state = constants.StateSettings
			} else {
				m.state = constants.StateSaver
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == constants.StateSettings {
			var cmd tea.Cmd
			m.settingsModel, cmd = m.settingsModel.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// animate renders the frame for now and schedules the next tick. A stopped
// instance leaves the surface blank and stops ticking.
func (m *Model) animate(now time.Time) tea.Cmd {
	frame, ok := m.instance.Animate(now)
	if !ok {
		m.clockFace.Clear()
		return nil
	}
	m.clockFace.SetFrame(frame)
	return clockface.Tick(m.interval)
}

func (m *Model) apply(flag models.Flag, value bool) bool {
	if err := m.store.Apply(m.settings, flag, value); err != nil {
		logger.Error("Failed to save setting", "flag", flag, "error", err)
		m.formError = "Failed to update settings: " + err.Error()
		return false
	}
	m.formError = ""
	m.settingsModel.SetSettings(*m.settings)
	if m.instance.State() == saver.StateRunning {
		if frame, ok := m.instance.Animate(time.Now()); ok {
			m.clockFace.SetFrame(frame)
		}
	}
	return true
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = constants.StateSettings
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if !m.applyForm() {
			// stay in the form so the user can retry
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.formError = ""
		m.state = constants.StateSettings
	}
	return tea.Batch(cmds...)
}

// applyForm persists every flag the form changed. It stops at the first
// failed write.
func (m *Model) applyForm() bool {
	next := m.settingsForm.Settings()
	for _, flag := range m.settingsForm.Changes(*m.settings) {
		if !m.apply(flag, next.Get(flag)) {
			return false
		}
	}
	m.state = constants.StateSettings
	return true
}
