package models

import "github.com/julianstephens/simpleclock/internal/constants"

// Flag names one persisted display preference. Its value is the storage key.
type Flag string

const (
	FlagLongDate       Flag = constants.SettingLongDate
	FlagStarDate       Flag = constants.SettingStarDate
	FlagTOSStarDate    Flag = constants.SettingTOSStarDate
	FlagTimeZoneSuffix Flag = constants.SettingTimeZoneSuffix
	FlagMainScreenOnly Flag = constants.SettingMainScreenOnly
)

// AllFlags lists every display flag in panel order.
var AllFlags = []Flag{
	FlagLongDate,
	FlagStarDate,
	FlagTOSStarDate,
	FlagTimeZoneSuffix,
	FlagMainScreenOnly,
}

// Label returns the human readable name shown next to a flag's toggle.
func (f Flag) Label() string {
	switch f {
	case FlagLongDate:
		return "Long date"
	case FlagStarDate:
		return "Stardate"
	case FlagTOSStarDate:
		return "TOS-style stardate"
	case FlagTimeZoneSuffix:
		return "Time zone"
	case FlagMainScreenOnly:
		return "Main screen only"
	default:
		return string(f)
	}
}

// Valid reports whether f is one of the known display flags.
func (f Flag) Valid() bool {
	for _, known := range AllFlags {
		if f == known {
			return true
		}
	}
	return false
}

// DisplaySettings represents the user's display preferences
type DisplaySettings struct {
	LongDate       bool `json:"long_date"`        // show the weekday and full date
	StarDate       bool `json:"star_date"`        // show the stardate line
	TOSStarDate    bool `json:"tos_star_date"`    // original-series stardate variant; stored only
	TimeZoneSuffix bool `json:"time_zone_suffix"` // append the zone abbreviation to the time
	MainScreenOnly bool `json:"main_screen_only"` // only render on the primary display
}

// Get returns the value of a single flag. Unknown flags read as false.
func (s DisplaySettings) Get(flag Flag) bool {
	switch flag {
	case FlagLongDate:
		return s.LongDate
	case FlagStarDate:
		return s.StarDate
	case FlagTOSStarDate:
		return s.TOSStarDate
	case FlagTimeZoneSuffix:
		return s.TimeZoneSuffix
	case FlagMainScreenOnly:
		return s.MainScreenOnly
	}
	return false
}

// Set updates a single flag. Unknown flags are ignored.
func (s *DisplaySettings) Set(flag Flag, value bool) {
	switch flag {
	case FlagLongDate:
		s.LongDate = value
	case FlagStarDate:
		s.StarDate = value
	case FlagTOSStarDate:
		s.TOSStarDate = value
	case FlagTimeZoneSuffix:
		s.TimeZoneSuffix = value
	case FlagMainScreenOnly:
		s.MainScreenOnly = value
	}
}

// ClockFrame is one rendered frame of the clock face.
type ClockFrame struct {
	Time     string
	Date     string
	Stardate string
}
