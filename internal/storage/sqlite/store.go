package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/migration"
	"moodmatrix/internal/models"
	"moodmatrix/migrations"
)

// ErrNotFound is returned by lookups for ids that do not exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the database (and its directory) if needed, applies pending
// migrations, and seeds default settings on first run.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings if this is a fresh database
	if _, err := s.GetSettings(); err != nil {
		defaults := models.UserSettings{
			CustomMoodTags:   append([]string(nil), constants.DefaultMoodTags...),
			CustomActivities: append([]string(nil), constants.DefaultActivities...),
			Theme:            models.ThemeLight,
			AppTheme:         models.ThemeDefault,
			IsPremium:        constants.DefaultIsPremium,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Load opens an existing database without migrating, validating that the
// schema matches this build.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'moodmatrix init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(nil)
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

// ClearMoodData empties mood entries and activity logs together. Both tables
// are cleared in one transaction, so a failure leaves both intact. Settings
// survive a clear.
func (s *Store) ClearMoodData() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM mood_entries"); err != nil {
		return fmt.Errorf("failed to clear mood entries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM activity_logs"); err != nil {
		return fmt.Errorf("failed to clear activity logs: %w", err)
	}

	return tx.Commit()
}
