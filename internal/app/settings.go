package app

import (
	"encoding/json"
	"fmt"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
	"moodmatrix/internal/validation"
)

// SettingsPatch is a partial settings update. Nil fields are left unchanged;
// the merge result is validated and persisted as a whole.
type SettingsPatch struct {
	CustomMoodTags   *[]string
	CustomActivities *[]string
	Theme            *models.ThemeMode
	AppTheme         *models.AppTheme
	ReminderTime     *string
	IsPremium        *bool
}

// UpdateSettings merges the patch over the cached settings, validates the
// result, and persists it.
func (a *App) UpdateSettings(patch SettingsPatch) error {
	merged := cloneSettings(a.settings)
	if patch.CustomMoodTags != nil {
		merged.CustomMoodTags = append([]string(nil), *patch.CustomMoodTags...)
	}
	if patch.CustomActivities != nil {
		merged.CustomActivities = append([]string(nil), *patch.CustomActivities...)
	}
	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	if patch.AppTheme != nil {
		merged.AppTheme = *patch.AppTheme
	}
	if patch.ReminderTime != nil {
		merged.ReminderTime = *patch.ReminderTime
	}
	if patch.IsPremium != nil {
		merged.IsPremium = *patch.IsPremium
	}

	if err := validation.ValidateSettings(merged); err != nil {
		return err
	}

	if err := a.store.SaveSettings(merged); err != nil {
		return a.fail("Failed to save settings", err)
	}

	a.settings = merged
	a.notify("Settings saved", SeveritySuccess)
	return nil
}

// SetAppTheme switches the color theme. Premium themes are rejected unless
// premium is active.
func (a *App) SetAppTheme(id models.AppTheme) error {
	option, ok := models.LookupTheme(id)
	if !ok {
		return fmt.Errorf("unknown app theme %q", id)
	}
	if option.IsPremium && !a.settings.IsPremium {
		return fmt.Errorf("theme %q requires premium", option.Name)
	}
	return a.UpdateSettings(SettingsPatch{AppTheme: &id})
}

// TogglePremium flips the premium flag. When premium turns off and the active
// theme is premium-only, the theme falls back to the default.
func (a *App) TogglePremium() error {
	premium := !a.settings.IsPremium
	patch := SettingsPatch{IsPremium: &premium}
	if !premium {
		if option, ok := models.LookupTheme(a.settings.AppTheme); ok && option.IsPremium {
			fallback := models.AppTheme(constants.DefaultAppTheme)
			patch.AppTheme = &fallback
		}
	}
	return a.UpdateSettings(patch)
}

// ToggleReminders switches the daily reminder on or off. Switching on with no
// prior time uses the default reminder time.
func (a *App) ToggleReminders() error {
	reminderTime := ""
	if !a.settings.RemindersEnabled() {
		reminderTime = constants.DefaultReminderTime
	}
	return a.UpdateSettings(SettingsPatch{ReminderTime: &reminderTime})
}

// ExportSettings serializes the current settings as indented JSON.
func (a *App) ExportSettings() ([]byte, error) {
	data, err := json.MarshalIndent(a.settings, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ImportSettings is not implemented yet; exports exist so nothing is lost,
// but there is no supported ingest path.
func (a *App) ImportSettings([]byte) error {
	return fmt.Errorf("settings import is not supported yet")
}

// ClearAllData wipes mood entries and activity logs. Settings survive so the
// user's tags, activities, and theme carry over to a fresh start.
func (a *App) ClearAllData() error {
	if err := a.store.ClearMoodData(); err != nil {
		return a.fail("Failed to clear data", err)
	}

	a.entries = nil
	a.activities = nil
	a.notify("All mood data cleared", SeverityWarning)
	return nil
}
