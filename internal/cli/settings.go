package cli

import (
	"fmt"
	"strings"

	"moodmatrix/internal/app"
	"moodmatrix/internal/models"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	settings := state.Settings()
	fmt.Println("Settings:")
	fmt.Printf("  Mood tags:   %s\n", strings.Join(settings.CustomMoodTags, ", "))
	fmt.Printf("  Activities:  %s\n", strings.Join(settings.CustomActivities, ", "))
	fmt.Printf("  Mode:        %s\n", settings.Theme)

	themeName := string(settings.AppTheme)
	if option, ok := models.LookupTheme(settings.AppTheme); ok {
		themeName = option.Name
	}
	fmt.Printf("  Theme:       %s\n", themeName)

	if settings.RemindersEnabled() {
		fmt.Printf("  Reminder:    daily at %s\n", settings.ReminderTime)
	} else {
		fmt.Printf("  Reminder:    off\n")
	}
	fmt.Printf("  Premium:     %t\n", settings.IsPremium)
	return nil
}

type SettingsSetCmd struct {
	Tags       string `help:"Replace the quick-select mood tags (comma-separated)."`
	Activities string `help:"Replace the quick-add activity labels (comma-separated)."`
	Mode       string `help:"Display mode (light|dark)."`
	Reminder   string `help:"Daily reminder time (HH:MM), or 'off' to disable."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	var patch app.SettingsPatch
	changed := false

	if c.Tags != "" {
		tags := splitList(c.Tags)
		patch.CustomMoodTags = &tags
		changed = true
	}
	if c.Activities != "" {
		activities := splitList(c.Activities)
		patch.CustomActivities = &activities
		changed = true
	}
	if c.Mode != "" {
		mode := models.ThemeMode(c.Mode)
		patch.Theme = &mode
		changed = true
	}
	if c.Reminder != "" {
		reminder := c.Reminder
		if strings.EqualFold(reminder, "off") {
			reminder = ""
		}
		patch.ReminderTime = &reminder
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to set, see 'moodmatrix settings set --help'")
	}

	if err := state.UpdateSettings(patch); err != nil {
		return err
	}
	fmt.Println("✓ Settings saved")
	return nil
}

type SettingsThemesCmd struct{}

func (c *SettingsThemesCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	current := state.Settings().AppTheme
	fmt.Println("Available themes:")
	for _, option := range models.ThemeCatalog {
		marker := " "
		if option.ID == current {
			marker = "*"
		}
		premium := ""
		if option.IsPremium {
			premium = " (premium)"
		}
		fmt.Printf("  %s %-14s %s%s\n", marker, option.ID, option.Description, premium)
	}
	return nil
}

type SettingsThemeCmd struct {
	ID string `arg:"" help:"Theme ID to activate (see 'settings themes')."`
}

func (c *SettingsThemeCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}
	if err := state.SetAppTheme(models.AppTheme(c.ID)); err != nil {
		return err
	}
	fmt.Printf("✓ Theme set to %s\n", c.ID)
	return nil
}

type SettingsPremiumCmd struct{}

func (c *SettingsPremiumCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}
	if err := state.TogglePremium(); err != nil {
		return err
	}
	if state.Settings().IsPremium {
		fmt.Println("✓ Premium enabled")
	} else {
		fmt.Println("✓ Premium disabled")
	}
	return nil
}
