package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/simpleclock/internal/models"
)

type EditSettingsMsg struct{}

// ToggleMsg asks the parent to persist a new value for Flag.
type ToggleMsg struct {
	Flag  models.Flag
	Value bool
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Edit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
	}
}

type Model struct {
	settings models.DisplaySettings
	cursor   int
	keys     KeyMap
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(25)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Width(25)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func New(settings models.DisplaySettings, width, height int) Model {
	return Model{
		settings: settings,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSettings refreshes the panel and moves the cursor off a control that
// just became disabled.
func (m *Model) SetSettings(settings models.DisplaySettings) {
	m.settings = settings
	if !m.enabled(m.cursor) {
		m.cursor = m.next(m.cursor, 1)
	}
}

func (m Model) Cursor() models.Flag {
	return models.AllFlags[m.cursor]
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.next(m.cursor, -1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.next(m.cursor, 1)
		case key.Matches(msg, m.keys.Toggle):
			if !m.enabled(m.cursor) {
				return m, nil
			}
			flag := models.AllFlags[m.cursor]
			value := !m.settings.Get(flag)
			return m, func() tea.Msg { return ToggleMsg{Flag: flag, Value: value} }
		case key.Matches(msg, m.keys.Edit):
			return m, func() tea.Msg { return EditSettingsMsg{} }
		}
	}
	return m, nil
}

func (m Model) enabled(i int) bool {
	return models.ControlStates(m.settings)[models.AllFlags[i]]
}

// next steps from i in dir, skipping disabled controls. It stays put when
// there is nowhere to go.
func (m Model) next(i, dir int) int {
	n := len(models.AllFlags)
	for j := i + dir; j >= 0 && j < n; j += dir {
		if m.enabled(j) {
			return j
		}
	}
	if m.enabled(i) {
		return i
	}
	for j := i - dir; j >= 0 && j < n; j -= dir {
		if m.enabled(j) {
			return j
		}
	}
	return i
}

func (m Model) View() string {
	states := models.ControlStates(m.settings)

	rows := []string{titleStyle.Render("Display Settings")}
	for i, flag := range models.AllFlags {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		box := "[ ]"
		if m.settings.Get(flag) {
			box = "[x]"
		}

		var row string
		if states[flag] {
			row = pointer + labelStyle.Render(flag.Label()) + valueStyle.Render(box)
		} else {
			row = pointer + disabledStyle.Render(flag.Label()) + disabledStyle.UnsetWidth().Render(box) +
				hintStyle.Render(fmt.Sprintf("  requires %s", models.FlagStarDate.Label()))
		}
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
