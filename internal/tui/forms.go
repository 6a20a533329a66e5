package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

// newMoodForm builds the mood logging form. Tag and activity choices come
// from the user's configured quick-select lists.
func newMoodForm(fm *MoodFormModel, settings models.UserSettings, prompt models.ReflectionPromptOption) *huh.Form {
	levelOptions := make([]huh.Option[int], 0, constants.MoodLevelMax)
	for level := constants.MoodLevelMin; level <= constants.MoodLevelMax; level++ {
		label := fmt.Sprintf("%s %s", constants.MoodGlyphs[level], constants.MoodDescriptions[level])
		levelOptions = append(levelOptions, huh.NewOption(label, level))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling?").
				Options(levelOptions...).
				Value(&fm.Level),
			huh.NewMultiSelect[string]().
				Title("Mood tags").
				Options(huh.NewOptions(settings.CustomMoodTags...)...).
				Value(&fm.Tags),
			huh.NewMultiSelect[string]().
				Title("Activities today").
				Options(huh.NewOptions(settings.CustomActivities...)...).
				Value(&fm.Activities),
			huh.NewText().
				Title("Journal note").
				Value(&fm.Note),
			huh.NewText().
				Title(prompt.Text).
				Description("Today's reflection prompt, leave blank to skip").
				Value(&fm.Reflection),
		),
	).WithTheme(huh.ThemeDracula())
}

// newActivityForm builds the add-activity form.
func newActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("activity name cannot be empty")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Completed").
				Value(&fm.Completed),
		),
	).WithTheme(huh.ThemeDracula())
}

// newSettingsForm builds the settings editor. Premium themes appear
// only when premium is active, mirroring the selection gate.
func newSettingsForm(fm *SettingsFormModel, settings models.UserSettings) *huh.Form {
	var themeOptions []huh.Option[string]
	for _, option := range models.ThemeCatalog {
		if option.IsPremium && !settings.IsPremium {
			continue
		}
		themeOptions = append(themeOptions, huh.NewOption(option.Name, string(option.ID)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display mode").
				Options(
					huh.NewOption("Light", string(models.ThemeLight)),
					huh.NewOption("Dark", string(models.ThemeDark)),
				).
				Value(&fm.Mode),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&fm.ThemeID),
			huh.NewInput().
				Title("Daily reminder (HH:MM)").
				Description("Leave blank to disable reminders").
				Value(&fm.Reminder).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateTimeFormat(strings.TrimSpace(s)) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Mood tags").
				Description("Comma-separated quick-select tags").
				Value(&fm.Tags),
			huh.NewInput().
				Title("Activities").
				Description("Comma-separated quick-add activities").
				Value(&fm.Activities),
		),
	).WithTheme(huh.ThemeDracula())
}
