// Package clock turns an instant and the display settings into the strings
// shown on the clock face.
package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/julianstephens/simpleclock/internal/constants"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/stardate"
)

// Formatter renders clock frames for one location and locale.
type Formatter struct {
	loc    *time.Location
	locale monday.Locale
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation evaluates every frame in loc instead of time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithLocale selects the date locale, e.g. "de_DE". Unsupported locales fall
// back to en_US.
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		if SupportedLocale(locale) {
			f.locale = monday.Locale(locale)
		}
	}
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		loc:    time.Local,
		locale: monday.Locale(constants.DefaultLocale),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SupportedLocale reports whether dates can be formatted for locale.
func SupportedLocale(locale string) bool {
	_, full := monday.FullFormatsByLocale[monday.Locale(locale)]
	_, long := monday.LongFormatsByLocale[monday.Locale(locale)]
	return full && long
}

// Locale returns the locale dates are rendered in.
func (f *Formatter) Locale() string {
	return string(f.locale)
}

// Location returns the zone times are rendered in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Frame computes the three clock face strings for now.
func (f *Formatter) Frame(now time.Time, s models.DisplaySettings) models.ClockFrame {
	return models.ClockFrame{
		Time:     f.TimeString(now, s),
		Date:     f.DateString(now, s),
		Stardate: f.StardateString(now, s),
	}
}

// TimeString returns "HH:MM", plus " ABBR" when the time zone suffix is on and
// the zone has an abbreviation.
func (f *Formatter) TimeString(now time.Time, s models.DisplaySettings) string {
	local := now.In(f.loc)
	out := fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
	if !s.TimeZoneSuffix {
		return out
	}
	if abbr := ZoneAbbreviation(local); abbr != "" {
		out += " " + abbr
	}
	return out
}

// DateString returns the localized date in full style (with weekday) when
// LongDate is set and long style otherwise.
func (f *Formatter) DateString(now time.Time, s models.DisplaySettings) string {
	layouts := monday.LongFormatsByLocale
	if s.LongDate {
		layouts = monday.FullFormatsByLocale
	}
	return monday.Format(now.In(f.loc), layouts[f.locale], f.locale)
}

// StardateString returns the stardate, or "" when stardates are off.
func (f *Formatter) StardateString(now time.Time, s models.DisplaySettings) string {
	if !s.StarDate {
		return ""
	}
	return stardate.Compute(now.In(f.loc))
}

// ZoneAbbreviation returns the zone abbreviation in effect at t, such as
// "PDT". Zones whose name is only an offset ("-03", "+0530") are shown as
// GMT offsets ("GMT-3", "GMT+5:30"). An unnamed zone yields "".
func ZoneAbbreviation(t time.Time) string {
	name, offset := t.Zone()
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
		return gmtOffset(offset)
	}
	return name
}

func gmtOffset(seconds int) string {
	if seconds == 0 {
		return "GMT"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours, minutes := seconds/3600, seconds%3600/60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}
