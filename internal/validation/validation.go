package validation

import (
	"fmt"
	"strings"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

// ValidateMoodEntry checks the preconditions for saving a mood entry. Invalid
// input is rejected before any storage access.
func ValidateMoodEntry(entry models.MoodEntry) error {
	if entry.MoodLevel < constants.MoodLevelMin || entry.MoodLevel > constants.MoodLevelMax {
		return fmt.Errorf("mood level must be between %d and %d, got %d",
			constants.MoodLevelMin, constants.MoodLevelMax, entry.MoodLevel)
	}
	if entry.Date == "" {
		return fmt.Errorf("mood entry date is required")
	}
	if !utils.ValidateDateFormat(entry.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", entry.Date)
	}
	return nil
}

// ValidateActivity checks the preconditions for saving an activity log.
func ValidateActivity(activity models.ActivityLog) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("activity name is required")
	}
	if activity.Date == "" {
		return fmt.Errorf("activity date is required")
	}
	if !utils.ValidateDateFormat(activity.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", activity.Date)
	}
	return nil
}

// ValidateSettings checks a settings record before it is persisted.
func ValidateSettings(settings models.UserSettings) error {
	switch settings.Theme {
	case models.ThemeLight, models.ThemeDark:
	default:
		return fmt.Errorf("unknown theme mode %q", settings.Theme)
	}
	if _, ok := models.LookupTheme(settings.AppTheme); !ok {
		return fmt.Errorf("unknown app theme %q", settings.AppTheme)
	}
	if settings.ReminderTime != "" && !utils.ValidateTimeFormat(settings.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q, expected HH:MM", settings.ReminderTime)
	}
	return nil
}
