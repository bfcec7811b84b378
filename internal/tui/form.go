package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/simpleclock/internal/models"
)

// SettingsFormModel backs the interactive settings form.
type SettingsFormModel struct {
	LongDate       bool
	StarDate       bool
	TOSStarDate    bool
	TimeZoneSuffix bool
	MainScreenOnly bool
}

func NewSettingsFormModel(s models.DisplaySettings) *SettingsFormModel {
	return &SettingsFormModel{
		LongDate:       s.LongDate,
		StarDate:       s.StarDate,
		TOSStarDate:    s.TOSStarDate,
		TimeZoneSuffix: s.TimeZoneSuffix,
		MainScreenOnly: s.MainScreenOnly,
	}
}

func (fm *SettingsFormModel) Settings() models.DisplaySettings {
	return models.DisplaySettings{
		LongDate:       fm.LongDate,
		StarDate:       fm.StarDate,
		TOSStarDate:    fm.TOSStarDate,
		TimeZoneSuffix: fm.TimeZoneSuffix,
		MainScreenOnly: fm.MainScreenOnly,
	}
}

// Changes lists the flags whose form value differs from current, in panel order.
func (fm *SettingsFormModel) Changes(current models.DisplaySettings) []models.Flag {
	next := fm.Settings()
	var changed []models.Flag
	for _, flag := range models.AllFlags {
		if next.Get(flag) != current.Get(flag) {
			changed = append(changed, flag)
		}
	}
	return changed
}

// NewSettingsForm builds the settings form. The TOS stardate question is
// hidden while stardates are off.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(models.FlagLongDate.Label()).
				Description("Show the weekday and full date").
				Value(&fm.LongDate),
			huh.NewConfirm().
				Title(models.FlagStarDate.Label()).
				Description("Show the stardate under the date").
				Value(&fm.StarDate),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title(models.FlagTOSStarDate.Label()).
				Description("Use the original series stardate style").
				Value(&fm.TOSStarDate),
		).WithHideFunc(func() bool {
			return !fm.StarDate
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title(models.FlagTimeZoneSuffix.Label()).
				Description("Append the time zone abbreviation to the time").
				Value(&fm.TimeZoneSuffix),
			huh.NewConfirm().
				Title(models.FlagMainScreenOnly.Label()).
				Description("Only show the clock on the main display").
				Value(&fm.MainScreenOnly),
		),
	)
}
