package clock

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/simpleclock/internal/models"
)

var pdt = time.FixedZone("PDT", -7*3600)

func TestTimeString(t *testing.T) {
	f := NewFormatter(WithLocation(time.UTC))

	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 5, 30, 59} {
			now := time.Date(2024, time.March, 15, h, m, 42, 0, time.UTC)
			want := fmt.Sprintf("%02d:%02d", h, m)
			if got := f.TimeString(now, models.DisplaySettings{}); got != want {
				t.Errorf("TimeString(%v) = %q, want %q", now, got, want)
			}
		}
	}
}

func TestTimeString_UsesFormatterLocation(t *testing.T) {
	f := NewFormatter(WithLocation(pdt))
	now := time.Date(2024, time.June, 1, 18, 4, 0, 0, time.UTC)

	if got := f.TimeString(now, models.DisplaySettings{}); got != "11:04" {
		t.Errorf("TimeString() = %q, want %q", got, "11:04")
	}
}

func TestTimeString_ZoneSuffix(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{"abbreviation", pdt, "11:04 PDT"},
		{"numeric zone name shown as gmt offset", time.FixedZone("+0530", 5*3600+1800), "23:34 GMT+5:30"},
		{"negative numeric zone name", time.FixedZone("-03", -3*3600), "15:04 GMT-3"},
		{"zero numeric zone name", time.FixedZone("+00", 0), "18:04 GMT"},
		{"unnamed zone yields no suffix", time.FixedZone("", 0), "18:04"},
		{"utc", time.UTC, "18:04 UTC"},
	}

	now := time.Date(2024, time.June, 1, 18, 4, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(WithLocation(tt.loc))
			got := f.TimeString(now, models.DisplaySettings{TimeZoneSuffix: true})
			if got != tt.want {
				t.Errorf("TimeString() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "  ") || strings.HasSuffix(got, " ") {
				t.Errorf("TimeString() = %q has a stray separator", got)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	f := NewFormatter(WithLocation(time.UTC))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC) // a Friday

	long := f.DateString(now, models.DisplaySettings{})
	if !strings.Contains(long, "March") || !strings.Contains(long, "15") || !strings.Contains(long, "2024") {
		t.Errorf("DateString() = %q, want month, day and year", long)
	}
	if strings.Contains(long, "Friday") {
		t.Errorf("DateString() = %q should not include the weekday", long)
	}

	full := f.DateString(now, models.DisplaySettings{LongDate: true})
	if !strings.Contains(full, "Friday") || !strings.Contains(full, "March") {
		t.Errorf("DateString(long) = %q, want weekday and month", full)
	}
}

func TestDateString_Locale(t *testing.T) {
	f := NewFormatter(WithLocation(time.UTC), WithLocale("de_DE"))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	full := f.DateString(now, models.DisplaySettings{LongDate: true})
	if !strings.Contains(full, "Freitag") || !strings.Contains(full, "März") {
		t.Errorf("DateString(de_DE) = %q, want German names", full)
	}
}

func TestWithLocale_Unsupported(t *testing.T) {
	f := NewFormatter(WithLocale("xx_XX"))
	if f.Locale() != "en_US" {
		t.Errorf("Locale() = %q, want fallback en_US", f.Locale())
	}
	if SupportedLocale("xx_XX") {
		t.Error("xx_XX should not be supported")
	}
}

func TestStardateString(t *testing.T) {
	f := NewFormatter(WithLocation(time.UTC))
	instants := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.July, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, now := range instants {
		if got := f.StardateString(now, models.DisplaySettings{}); got != "" {
			t.Errorf("StardateString(%v) = %q with stardate off, want empty", now, got)
		}
		if got := f.StardateString(now, models.DisplaySettings{TOSStarDate: true}); got != "" {
			t.Errorf("TOS flag alone should not enable the stardate, got %q", got)
		}
	}

	if got := f.StardateString(instants[0], models.DisplaySettings{StarDate: true}); got != "2024.0" {
		t.Errorf("StardateString(Jan 1) = %q, want 2024.0", got)
	}
	if got := f.StardateString(instants[2], models.DisplaySettings{StarDate: true}); got != "2023.100" {
		t.Errorf("StardateString(Dec 31) = %q, want 2023.100", got)
	}
}

func TestFrame(t *testing.T) {
	f := NewFormatter(WithLocation(pdt))
	now := time.Date(2024, time.January, 1, 8, 0, 0, 0, pdt)

	frame := f.Frame(now, models.DisplaySettings{StarDate: true, TimeZoneSuffix: true})
	if frame.Time != "08:00 PDT" {
		t.Errorf("frame.Time = %q", frame.Time)
	}
	if frame.Date == "" {
		t.Error("frame.Date is empty")
	}
	if frame.Stardate != "2024.0" {
		t.Errorf("frame.Stardate = %q, want 2024.0", frame.Stardate)
	}
}
