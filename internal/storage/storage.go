package storage

import (
	"errors"

	"moodmatrix/internal/storage/sqlite"
)

// ErrNotFound is returned by lookups for ids that do not exist.
var ErrNotFound = sqlite.ErrNotFound

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// NewSQLiteStore creates a Provider backed by an embedded SQLite database at
// the given path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
