package sqlite

import (
	"fmt"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
)

// GetSettings reads the settings singleton from the key/value rows. Returns
// an error if no settings rows exist yet (fresh database before Init seeds
// defaults).
func (s *Store) GetSettings() (models.UserSettings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.UserSettings{}, err
	}
	defer rows.Close()

	settings := models.UserSettings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserSettings{}, err
		}
		switch key {
		case constants.SettingCustomMoodTags:
			if settings.CustomMoodTags, err = unmarshalStringList(value); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingCustomActivities:
			if settings.CustomActivities, err = unmarshalStringList(value); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingTheme:
			settings.Theme = models.ThemeMode(value)
		case constants.SettingAppTheme:
			settings.AppTheme = models.AppTheme(value)
		case constants.SettingReminderTime:
			settings.ReminderTime = value
		case constants.SettingIsPremium:
			settings.IsPremium = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.UserSettings{}, err
	}

	if count == 0 {
		return models.UserSettings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

// SaveSettings writes the full settings singleton in one transaction.
func (s *Store) SaveSettings(settings models.UserSettings) error {
	tags, err := marshalStringList(settings.CustomMoodTags)
	if err != nil {
		return fmt.Errorf("failed to encode custom mood tags: %w", err)
	}
	activities, err := marshalStringList(settings.CustomActivities)
	if err != nil {
		return fmt.Errorf("failed to encode custom activities: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{constants.SettingCustomMoodTags, tags},
		{constants.SettingCustomActivities, activities},
		{constants.SettingTheme, string(settings.Theme)},
		{constants.SettingAppTheme, string(settings.AppTheme)},
		{constants.SettingReminderTime, settings.ReminderTime},
		{constants.SettingIsPremium, fmt.Sprintf("%v", settings.IsPremium)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
