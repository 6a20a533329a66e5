package sqlite

import (
	"database/sql"
	"errors"

	"moodmatrix/internal/models"
)

// SaveActivity inserts or replaces the activity log keyed by its id. The
// store accepts duplicate (name, date) pairs; the quick-add duplicate check
// belongs to the caller.
func (s *Store) SaveActivity(activity models.ActivityLog) error {
	_, err := s.db.Exec(`
		INSERT INTO activity_logs (id, name, date, completed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			date = excluded.date,
			completed = excluded.completed`,
		activity.ID, activity.Name, activity.Date, boolToInt(activity.Completed))

	return err
}

func (s *Store) GetActivity(id string) (models.ActivityLog, error) {
	row := s.db.QueryRow(`
		SELECT id, name, date, completed FROM activity_logs WHERE id = ?`, id)

	var a models.ActivityLog
	var completed int
	err := row.Scan(&a.ID, &a.Name, &a.Date, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActivityLog{}, ErrNotFound
	}
	if err != nil {
		return models.ActivityLog{}, err
	}
	a.Completed = completed != 0
	return a, nil
}

func (s *Store) GetActivitiesByDate(date string) ([]models.ActivityLog, error) {
	return s.queryActivities(`
		SELECT id, name, date, completed FROM activity_logs WHERE date = ?`, date)
}

func (s *Store) GetActivitiesByName(name string) ([]models.ActivityLog, error) {
	return s.queryActivities(`
		SELECT id, name, date, completed FROM activity_logs WHERE name = ?`, name)
}

func (s *Store) GetAllActivities() ([]models.ActivityLog, error) {
	return s.queryActivities(`
		SELECT id, name, date, completed FROM activity_logs`)
}

// DeleteActivity removes the log by id. Deleting an id that does not exist is
// not an error.
func (s *Store) DeleteActivity(id string) error {
	_, err := s.db.Exec("DELETE FROM activity_logs WHERE id = ?", id)
	return err
}

func (s *Store) queryActivities(query string, args ...any) ([]models.ActivityLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.ActivityLog
	for rows.Next() {
		var a models.ActivityLog
		var completed int
		if err := rows.Scan(&a.ID, &a.Name, &a.Date, &completed); err != nil {
			return nil, err
		}
		a.Completed = completed != 0
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
