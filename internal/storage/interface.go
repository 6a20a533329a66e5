package storage

import "moodmatrix/internal/models"

// Provider is the durable store for the three Mood Matrix collections.
//
// Writes are fail-fast: any durability failure is returned as an error and the
// prior value remains visible. Lookups on missing ids return ErrNotFound;
// deletes on missing ids are benign no-ops.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Mood entries
	SaveMoodEntry(models.MoodEntry) error
	GetMoodEntry(id string) (models.MoodEntry, error)
	// GetMoodEntriesByDate returns every entry recorded for the date. The
	// store does not enforce one entry per date, so callers must handle
	// zero, one, or many results.
	GetMoodEntriesByDate(date string) ([]models.MoodEntry, error)
	GetAllMoodEntries() ([]models.MoodEntry, error)
	DeleteMoodEntry(id string) error

	// Activity logs
	SaveActivity(models.ActivityLog) error
	GetActivity(id string) (models.ActivityLog, error)
	GetActivitiesByDate(date string) ([]models.ActivityLog, error)
	GetActivitiesByName(name string) ([]models.ActivityLog, error)
	GetAllActivities() ([]models.ActivityLog, error)
	DeleteActivity(id string) error

	// Settings singleton
	GetSettings() (models.UserSettings, error)
	SaveSettings(models.UserSettings) error

	// ClearMoodData empties mood entries and activity logs in a single
	// transaction. The settings singleton is deliberately left intact.
	ClearMoodData() error

	// Utils
	GetConfigPath() string
}
