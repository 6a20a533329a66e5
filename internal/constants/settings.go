package constants

const (
	// Settings row keys
	SettingCustomMoodTags   = "custom_mood_tags"
	SettingCustomActivities = "custom_activities"
	SettingTheme            = "theme"
	SettingAppTheme         = "app_theme"
	SettingReminderTime     = "reminder_time"
	SettingIsPremium        = "is_premium"

	// Default Settings Values
	DefaultTheme        = "light"
	DefaultAppTheme     = "default"
	DefaultIsPremium    = false
	DefaultReminderTime = "09:00" // applied when reminders are switched on with no time set
)

// DefaultMoodTags are the quick-select mood tags seeded on first run.
var DefaultMoodTags = []string{"Happy", "Sad", "Anxious", "Calm", "Energetic", "Tired"}

// DefaultActivities are the quick-add activity labels seeded on first run.
var DefaultActivities = []string{"Exercise", "Meditation", "Reading", "Social", "Work"}
