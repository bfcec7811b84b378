package constants

const (
	// Display Settings
	SettingLongDate       = "long_date"
	SettingStarDate       = "star_date"
	SettingTOSStarDate    = "tos_star_date"
	SettingTimeZoneSuffix = "time_zone_suffix"
	SettingMainScreenOnly = "main_screen_only"

	// Registered defaults; every flag starts off
	DefaultLongDate       = false
	DefaultStarDate       = false
	DefaultTOSStarDate    = false
	DefaultTimeZoneSuffix = false
	DefaultMainScreenOnly = false
)
