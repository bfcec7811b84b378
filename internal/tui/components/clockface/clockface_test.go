package clockface

import (
	"strings"
	"testing"

	"github.com/julianstephens/simpleclock/internal/models"
)

func TestBigDigits(t *testing.T) {
	out := BigDigits("10:42")
	lines := strings.Split(out, "\n")
	if len(lines) != glyphHeight {
		t.Fatalf("got %d rows, want %d", len(lines), glyphHeight)
	}
	if lines[0] != " ██ ███   █ █ ███" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[1] != "  █ █ █ █ █ █   █" {
		t.Errorf("second row = %q", lines[1])
	}
}

func TestBigDigitsSuffix(t *testing.T) {
	out := BigDigits("09:05 PDT")
	lines := strings.Split(out, "\n")
	if !strings.HasSuffix(lines[glyphHeight-1], "PDT") {
		t.Errorf("bottom row %q missing zone suffix", lines[glyphHeight-1])
	}
	for _, l := range lines[:glyphHeight-1] {
		if strings.Contains(l, "PDT") {
			t.Errorf("suffix rendered on upper row %q", l)
		}
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("row %d width %d, want %d", i, len([]rune(l)), width)
		}
	}
}

func TestView(t *testing.T) {
	m := New()
	m.SetFrame(models.ClockFrame{Time: "12:00", Date: "January 2, 2006", Stardate: "2006.0"})

	out := m.View()
	for _, want := range []string{"January 2, 2006", "2006.0", "███"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewPlacement(t *testing.T) {
	m := New()
	m.SetSize(80, 36)
	m.SetFrame(models.ClockFrame{Time: "12:00", Date: "January 2, 2006"})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 36 {
		t.Fatalf("View() height = %d, want 36", len(lines))
	}

	first := -1
	for i, l := range lines {
		if strings.Contains(l, "█") {
			first = i
			break
		}
	}
	if first != 36/6 {
		t.Errorf("clock starts at row %d, want %d", first, 36/6)
	}
}

func TestClearRendersNoText(t *testing.T) {
	m := New()
	m.SetSize(40, 10)
	m.SetFrame(models.ClockFrame{Time: "12:00", Date: "today"})
	m.Clear()

	if m.Visible() {
		t.Error("cleared face still visible")
	}
	out := m.View()
	if strings.Contains(out, "█") || strings.Contains(out, "today") {
		t.Error("cleared face rendered clock text")
	}
}
