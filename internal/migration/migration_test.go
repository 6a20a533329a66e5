package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, sqlText := range files {
		m[name] = &fstest.MapFile{Data: []byte(sqlText)}
	}
	return m
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	r := NewRunner(newTestDB(t), migrationFS(nil))
	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("CurrentVersion() = %d, want 0", version)
	}
}

func TestReadMigrationFilesSortsAndParses(t *testing.T) {
	r := NewRunner(newTestDB(t), migrationFS(map[string]string{
		"002_add_index.sql": "CREATE INDEX idx_a ON a(x);",
		"001_init.sql":      "CREATE TABLE a (x INTEGER);",
		"notes.txt":         "ignored",
	}))

	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles() error = %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("got %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Errorf("first migration = %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "add_index" {
		t.Errorf("second migration = %+v", migrations[1])
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"no separator", "init.sql"},
		{"non-numeric version", "abc_init.sql"},
		{"zero version", "000_init.sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(newTestDB(t), migrationFS(map[string]string{
				tt.file: "SELECT 1;",
			}))
			if _, err := r.ReadMigrationFiles(); err == nil {
				t.Errorf("expected error for filename %q", tt.file)
			}
		})
	}
}

func TestApplyRunsPendingMigrations(t *testing.T) {
	db := newTestDB(t)
	r := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE moods (id TEXT PRIMARY KEY);",
		"002_tags.sql": "CREATE TABLE tags (id TEXT PRIMARY KEY);",
	}))

	var logged []string
	applied, err := r.Apply(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("Apply() = %d, want 2", applied)
	}
	if len(logged) != 2 || !strings.Contains(logged[0], "init") {
		t.Errorf("unexpected log output: %v", logged)
	}

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version after Apply = %d, want 2", version)
	}

	// Both tables must exist.
	for _, table := range []string{"moods", "tags"} {
		if _, err := db.Exec("SELECT * FROM " + table); err != nil {
			t.Errorf("table %s missing after Apply: %v", table, err)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	r := NewRunner(newTestDB(t), migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE moods (id TEXT PRIMARY KEY);",
	}))

	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	applied, err := r.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply() = %d, want 0", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := newTestDB(t)
	r := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE moods (id TEXT PRIMARY KEY);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	}))

	applied, err := r.Apply(nil)
	if err == nil {
		t.Fatal("Apply() should fail on invalid SQL")
	}
	if applied != 1 {
		t.Errorf("Apply() = %d applied before failure, want 1", applied)
	}

	// The failed migration must not bump the version.
	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 1 {
		t.Errorf("version after failed migration = %d, want 1", version)
	}
}

func TestApplyRejectsNewerDatabase(t *testing.T) {
	db := newTestDB(t)
	r := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE moods (id TEXT PRIMARY KEY);",
	}))
	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Pretend a newer release wrote this database.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if _, err := r.Apply(nil); err == nil {
		t.Error("Apply() should refuse a database from a newer release")
	}
}

func TestValidateVersion(t *testing.T) {
	db := newTestDB(t)
	files := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE moods (id TEXT PRIMARY KEY);",
		"002_tags.sql": "CREATE TABLE tags (id TEXT PRIMARY KEY);",
	})
	r := NewRunner(db, files)

	// Fresh database is behind.
	if err := r.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should fail before migration")
	}

	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after migration error = %v", err)
	}

	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := r.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should reject a newer schema")
	}
}

func TestDuplicateVersionsRejected(t *testing.T) {
	r := NewRunner(newTestDB(t), migrationFS(map[string]string{
		"001_init.sql":  "SELECT 1;",
		"001_other.sql": "SELECT 1;",
	}))
	if _, err := r.ReadMigrationFiles(); err == nil {
		t.Error("expected error for duplicate migration versions")
	}
}

func TestLatestVersionEmpty(t *testing.T) {
	r := NewRunner(newTestDB(t), migrationFS(nil))
	latest, err := r.LatestVersion()
	if err != nil {
		t.Fatalf("LatestVersion() error = %v", err)
	}
	if latest != 0 {
		t.Errorf("LatestVersion() = %d, want 0", latest)
	}
}
