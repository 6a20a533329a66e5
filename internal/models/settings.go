package models

// ThemeMode is the light/dark display mode
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// UserSettings represents the application-wide settings singleton
type UserSettings struct {
	CustomMoodTags   []string  `json:"custom_mood_tags"`  // quick-select mood tags, in display order
	CustomActivities []string  `json:"custom_activities"` // quick-add activity labels, in display order
	Theme            ThemeMode `json:"theme"`
	AppTheme         AppTheme  `json:"app_theme"`
	ReminderTime     string    `json:"reminder_time,omitempty"` // HH:MM; empty means reminders off
	IsPremium        bool      `json:"is_premium"`
}

// RemindersEnabled reports whether a daily reminder time is set.
func (s UserSettings) RemindersEnabled() bool {
	return s.ReminderTime != ""
}
