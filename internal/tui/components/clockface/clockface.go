// Package clockface renders the saver surface: block digit time, date and
// stardate on black.
package clockface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/simpleclock/internal/models"
)

var (
	background = lipgloss.Color("0")

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(background)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(background).
			Bold(true).
			MarginTop(1)

	stardateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(background)
)

type TickMsg time.Time

// Tick schedules the next animation pass.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	frame   models.ClockFrame
	visible bool
	width   int
	height  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetFrame(frame models.ClockFrame) {
	m.frame = frame
	m.visible = true
}

// Clear blanks the surface; a stopped saver keeps a black screen.
func (m *Model) Clear() {
	m.frame = models.ClockFrame{}
	m.visible = false
}

func (m Model) Frame() models.ClockFrame {
	return m.frame
}

func (m Model) Visible() bool {
	return m.visible
}

func (m Model) View() string {
	var content string
	if m.visible {
		lines := []string{
			timeStyle.Render(BigDigits(m.frame.Time)),
			dateStyle.Render(m.frame.Date),
		}
		if m.frame.Stardate != "" {
			lines = append(lines, stardateStyle.Render(m.frame.Stardate))
		}
		content = lipgloss.JoinVertical(lipgloss.Center, lines...)
	}

	if m.width <= 0 || m.height <= 0 {
		return content
	}

	top := m.height / 6
	if content != "" {
		content = lipgloss.NewStyle().PaddingTop(top).Background(background).Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(background))
}
