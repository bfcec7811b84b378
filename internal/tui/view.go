package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/simpleclock/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateSaver:
		return m.clockFace.View()
	case constants.StateEditSettings:
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.form.View(),
			m.viewError(),
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(m.settingsModel.View()),
		m.viewError(),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Clock", "Settings"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewError() string {
	if m.formError == "" {
		return ""
	}
	return dangerStyle.Render(m.formError)
}
