package settings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/simpleclock/internal/models"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationSkipsDisabledControl(t *testing.T) {
	m := New(models.DisplaySettings{}, 80, 24)

	m, _ = m.Update(keyMsg("down"))
	if m.Cursor() != models.FlagStarDate {
		t.Fatalf("cursor = %s, want star_date", m.Cursor())
	}

	// tos_star_date is disabled while stardates are off
	m, _ = m.Update(keyMsg("down"))
	if m.Cursor() != models.FlagTimeZoneSuffix {
		t.Errorf("cursor = %s, want time_zone_suffix", m.Cursor())
	}

	m, _ = m.Update(keyMsg("up"))
	if m.Cursor() != models.FlagStarDate {
		t.Errorf("cursor = %s, want star_date", m.Cursor())
	}
}

func TestNavigationWithStardateOn(t *testing.T) {
	m := New(models.DisplaySettings{StarDate: true}, 80, 24)
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	if m.Cursor() != models.FlagTOSStarDate {
		t.Errorf("cursor = %s, want tos_star_date", m.Cursor())
	}
}

func TestToggleEmitsMsg(t *testing.T) {
	m := New(models.DisplaySettings{LongDate: true}, 80, 24)

	_, cmd := m.Update(keyMsg("space"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ToggleMsg)
	if !ok {
		t.Fatalf("expected ToggleMsg, got %T", cmd())
	}
	if msg.Flag != models.FlagLongDate || msg.Value {
		t.Errorf("unexpected toggle %+v", msg)
	}
}

func TestSetSettingsMovesCursorOffDisabled(t *testing.T) {
	m := New(models.DisplaySettings{StarDate: true, TOSStarDate: true}, 80, 24)
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	if m.Cursor() != models.FlagTOSStarDate {
		t.Fatalf("cursor = %s", m.Cursor())
	}

	m.SetSettings(models.DisplaySettings{TOSStarDate: true})
	if m.Cursor() == models.FlagTOSStarDate {
		t.Error("cursor left on disabled control")
	}

	_, cmd := m.Update(keyMsg("space"))
	if cmd != nil {
		if msg, ok := cmd().(ToggleMsg); ok && msg.Flag == models.FlagTOSStarDate {
			t.Error("disabled control toggled")
		}
	}
}

func TestEditKey(t *testing.T) {
	m := New(models.DisplaySettings{}, 80, 24)
	_, cmd := m.Update(keyMsg("e"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(EditSettingsMsg); !ok {
		t.Error("expected EditSettingsMsg")
	}
}

func TestViewMarksDisabled(t *testing.T) {
	out := New(models.DisplaySettings{}, 80, 24).View()
	if !strings.Contains(out, "requires Stardate") {
		t.Error("disabled hint not shown")
	}

	out = New(models.DisplaySettings{StarDate: true, TOSStarDate: true}, 80, 24).View()
	if strings.Contains(out, "requires Stardate") {
		t.Error("hint shown while stardate is on")
	}
	if strings.Count(out, "[x]") != 2 {
		t.Errorf("expected two checked boxes in %q", out)
	}
}
