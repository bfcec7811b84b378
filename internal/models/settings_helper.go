package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/simpleclock/internal/constants"
)

// DefaultSettings returns the registered defaults for every flag.
func DefaultSettings() map[Flag]bool {
	return map[Flag]bool{
		FlagLongDate:       constants.DefaultLongDate,
		FlagStarDate:       constants.DefaultStarDate,
		FlagTOSStarDate:    constants.DefaultTOSStarDate,
		FlagTimeZoneSuffix: constants.DefaultTimeZoneSuffix,
		FlagMainScreenOnly: constants.DefaultMainScreenOnly,
	}
}

// MapToSettings converts stored key-value pairs to DisplaySettings, starting
// from defaults for any key that is absent. Unknown keys are ignored.
func MapToSettings(data map[string]string, defaults map[Flag]bool) (DisplaySettings, error) {
	settings := DisplaySettings{}
	for flag, value := range defaults {
		settings.Set(flag, value)
	}

	for key, value := range data {
		flag := Flag(key)
		if !flag.Valid() {
			continue
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return DisplaySettings{}, fmt.Errorf("parsing %s: %w", key, err)
		}
		settings.Set(flag, b)
	}
	return settings, nil
}

// SettingsToMap converts DisplaySettings to key-value pairs for storage.
func SettingsToMap(settings DisplaySettings) map[string]string {
	data := make(map[string]string, len(AllFlags))
	for _, flag := range AllFlags {
		data[string(flag)] = FormatBool(settings.Get(flag))
	}
	return data
}

// FormatBool renders a flag value the way it is stored.
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// ControlStates reports which flag controls are editable for the given
// settings. The TOS stardate control follows the stardate flag; all others
// are always enabled.
func ControlStates(settings DisplaySettings) map[Flag]bool {
	states := make(map[Flag]bool, len(AllFlags))
	for _, flag := range AllFlags {
		states[flag] = true
	}
	states[FlagTOSStarDate] = settings.StarDate
	return states
}
