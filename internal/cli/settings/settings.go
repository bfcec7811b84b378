package settings

import (
	"fmt"

	"github.com/julianstephens/simpleclock/internal/cli"
	"github.com/julianstephens/simpleclock/internal/models"
	"github.com/julianstephens/simpleclock/internal/tui"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`
	Edit bool `help:"Edit settings in an interactive form."`

	LongDate       *bool `name:"long-date" help:"Show the weekday and full date."`
	StarDate       *bool `name:"star-date" help:"Show the stardate."`
	TOSStarDate    *bool `name:"tos-star-date" help:"Use the original series stardate style (requires --star-date)."`
	TimeZoneSuffix *bool `name:"time-zone-suffix" help:"Append the time zone abbreviation to the time."`
	MainScreenOnly *bool `name:"main-screen-only" help:"Only show the clock on the main display."`
}

// runForm is replaced in tests; the real form needs a terminal.
var runForm = func(fm *tui.SettingsFormModel) error {
	return tui.NewSettingsForm(fm).Run()
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	store, settings, err := ctx.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		printSettings(*settings)
		return nil
	}

	if c.Edit {
		fm := tui.NewSettingsFormModel(*settings)
		if err := runForm(fm); err != nil {
			return fmt.Errorf("settings form: %w", err)
		}
		next := fm.Settings()
		changes := fm.Changes(*settings)
		for _, flag := range changes {
			if err := store.Apply(settings, flag, next.Get(flag)); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		}
		if len(changes) == 0 {
			fmt.Println("No changes made.")
		} else {
			fmt.Println("Settings updated successfully.")
		}
		return nil
	}

	requested := map[models.Flag]*bool{
		models.FlagLongDate:       c.LongDate,
		models.FlagStarDate:       c.StarDate,
		models.FlagTOSStarDate:    c.TOSStarDate,
		models.FlagTimeZoneSuffix: c.TimeZoneSuffix,
		models.FlagMainScreenOnly: c.MainScreenOnly,
	}

	updated := false
	for _, flag := range models.AllFlags {
		value := requested[flag]
		if value == nil {
			continue
		}
		if err := store.Apply(settings, flag, *value); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	fmt.Println("Settings updated successfully.")
	if settings.TOSStarDate && !settings.StarDate {
		fmt.Println("Note: the TOS stardate setting has no effect while the stardate is off.")
	}
	return nil
}

func printSettings(s models.DisplaySettings) {
	states := models.ControlStates(s)
	fmt.Println("Current Settings:")
	for _, flag := range models.AllFlags {
		line := fmt.Sprintf("  %-20s %v", flag.Label()+":", s.Get(flag))
		if !states[flag] {
			line += " (inactive)"
		}
		fmt.Println(line)
	}
}
