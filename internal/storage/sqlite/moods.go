package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"moodmatrix/internal/models"
)

// SaveMoodEntry inserts or replaces the entry keyed by its id.
func (s *Store) SaveMoodEntry(entry models.MoodEntry) error {
	tags, err := marshalStringList(entry.MoodTags)
	if err != nil {
		return fmt.Errorf("failed to encode mood tags: %w", err)
	}
	activities, err := marshalStringList(entry.Activities)
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO mood_entries (id, date, entry_time, mood_level, mood_tags, journal_note, reflection_prompt, reflection_response, activities)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			entry_time = excluded.entry_time,
			mood_level = excluded.mood_level,
			mood_tags = excluded.mood_tags,
			journal_note = excluded.journal_note,
			reflection_prompt = excluded.reflection_prompt,
			reflection_response = excluded.reflection_response,
			activities = excluded.activities`,
		entry.ID, entry.Date, entry.Time, entry.MoodLevel, tags,
		entry.JournalNote, entry.ReflectionPrompt, entry.ReflectionResponse, activities)

	return err
}

func (s *Store) GetMoodEntry(id string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, entry_time, mood_level, mood_tags, journal_note, reflection_prompt, reflection_response, activities
		FROM mood_entries WHERE id = ?`, id)

	entry, err := scanMoodEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, ErrNotFound
	}
	return entry, err
}

func (s *Store) GetMoodEntriesByDate(date string) ([]models.MoodEntry, error) {
	return s.queryMoodEntries(`
		SELECT id, date, entry_time, mood_level, mood_tags, journal_note, reflection_prompt, reflection_response, activities
		FROM mood_entries WHERE date = ?`, date)
}

func (s *Store) GetAllMoodEntries() ([]models.MoodEntry, error) {
	return s.queryMoodEntries(`
		SELECT id, date, entry_time, mood_level, mood_tags, journal_note, reflection_prompt, reflection_response, activities
		FROM mood_entries`)
}

// DeleteMoodEntry removes the entry by id. Deleting an id that does not exist
// is not an error.
func (s *Store) DeleteMoodEntry(id string) error {
	_, err := s.db.Exec("DELETE FROM mood_entries WHERE id = ?", id)
	return err
}

func (s *Store) queryMoodEntries(query string, args ...any) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		entry, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMoodEntry(row rowScanner) (models.MoodEntry, error) {
	var e models.MoodEntry
	var tags, activities string

	err := row.Scan(&e.ID, &e.Date, &e.Time, &e.MoodLevel, &tags,
		&e.JournalNote, &e.ReflectionPrompt, &e.ReflectionResponse, &activities)
	if err != nil {
		return models.MoodEntry{}, err
	}

	if e.MoodTags, err = unmarshalStringList(tags); err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to decode mood tags for entry %s: %w", e.ID, err)
	}
	if e.Activities, err = unmarshalStringList(activities); err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to decode activities for entry %s: %w", e.ID, err)
	}

	return e, nil
}

func marshalStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalStringList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}
