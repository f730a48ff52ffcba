package cli

import (
	"fmt"

	"github.com/jeevansaathi/saathi-cli/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone        *string `help:"IANA timezone name, or Local for the system timezone."`
	DefaultReminder *string `help:"Default reminder time HH:MM for habits without reminders."`
	LookaheadDays   *int    `help:"How many days ahead open-ended habits appear on the agenda."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:         %s\n", settings.Timezone)
		fmt.Printf("  Default Reminder: %s\n", settings.DefaultReminder)
		fmt.Printf("  Lookahead Days:   %d\n", settings.LookaheadDays)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DefaultReminder != nil {
		settings.DefaultReminder = *c.DefaultReminder
		updated = true
	}
	if c.LookaheadDays != nil {
		settings.LookaheadDays = *c.LookaheadDays
		updated = true
	}

	if !updated {
		fmt.Println("No settings changed. Use --list to view current settings.")
		return nil
	}

	if err := validation.ValidateSettings(settings); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings updated.")
	return nil
}
