package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"moodmatrix/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "moodmatrix.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.Theme != models.ThemeLight {
		t.Errorf("default theme = %q, want %q", settings.Theme, models.ThemeLight)
	}
	if settings.AppTheme != models.ThemeDefault {
		t.Errorf("default app theme = %q, want %q", settings.AppTheme, models.ThemeDefault)
	}
	if len(settings.CustomMoodTags) == 0 || len(settings.CustomActivities) == 0 {
		t.Error("defaults should seed mood tags and activities")
	}
	if settings.IsPremium {
		t.Error("fresh database should not be premium")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	settings, _ := store.GetSettings()
	settings.IsPremium = true
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	// A second Init must not reset existing settings.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	settings, _ = store.GetSettings()
	if !settings.IsPremium {
		t.Error("re-running Init should not overwrite saved settings")
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestMoodEntryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entry := models.MoodEntry{
		ID:                 "m1",
		Date:               "2024-03-15",
		Time:               "08:30",
		MoodLevel:          4,
		MoodTags:           []string{"happy", "energetic"},
		JournalNote:        "Great morning run",
		ReflectionPrompt:   "What made you smile today?",
		ReflectionResponse: "The sunrise",
		Activities:         []string{"Exercise"},
	}
	if err := store.SaveMoodEntry(entry); err != nil {
		t.Fatalf("SaveMoodEntry() error = %v", err)
	}

	got, err := store.GetMoodEntry("m1")
	if err != nil {
		t.Fatalf("GetMoodEntry() error = %v", err)
	}
	if !reflect.DeepEqual(got, entry) {
		t.Errorf("GetMoodEntry() = %+v, want %+v", got, entry)
	}
}

func TestSaveMoodEntryUpserts(t *testing.T) {
	store := newTestStore(t)

	entry := models.MoodEntry{ID: "m1", Date: "2024-03-15", MoodLevel: 2}
	if err := store.SaveMoodEntry(entry); err != nil {
		t.Fatalf("SaveMoodEntry() error = %v", err)
	}

	entry.MoodLevel = 5
	entry.JournalNote = "Turned around"
	if err := store.SaveMoodEntry(entry); err != nil {
		t.Fatalf("SaveMoodEntry() update error = %v", err)
	}

	all, err := store.GetAllMoodEntries()
	if err != nil {
		t.Fatalf("GetAllMoodEntries() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d entries after upsert, want 1", len(all))
	}
	if all[0].MoodLevel != 5 || all[0].JournalNote != "Turned around" {
		t.Errorf("upsert did not replace fields: %+v", all[0])
	}
}

func TestGetMoodEntryNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetMoodEntry("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMoodEntry() error = %v, want ErrNotFound", err)
	}
}

func TestGetMoodEntriesByDate(t *testing.T) {
	store := newTestStore(t)

	for _, e := range []models.MoodEntry{
		{ID: "m1", Date: "2024-03-15", MoodLevel: 3},
		{ID: "m2", Date: "2024-03-15", MoodLevel: 4},
		{ID: "m3", Date: "2024-03-16", MoodLevel: 2},
	} {
		if err := store.SaveMoodEntry(e); err != nil {
			t.Fatalf("SaveMoodEntry(%s) error = %v", e.ID, err)
		}
	}

	entries, err := store.GetMoodEntriesByDate("2024-03-15")
	if err != nil {
		t.Fatalf("GetMoodEntriesByDate() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries for 2024-03-15, want 2", len(entries))
	}

	entries, err = store.GetMoodEntriesByDate("2024-01-01")
	if err != nil {
		t.Fatalf("GetMoodEntriesByDate() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries for an empty date, want 0", len(entries))
	}
}

func TestDeleteMoodEntry(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveMoodEntry(models.MoodEntry{ID: "m1", Date: "2024-03-15", MoodLevel: 3}); err != nil {
		t.Fatalf("SaveMoodEntry() error = %v", err)
	}
	if err := store.DeleteMoodEntry("m1"); err != nil {
		t.Fatalf("DeleteMoodEntry() error = %v", err)
	}
	if _, err := store.GetMoodEntry("m1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("entry still readable after delete: %v", err)
	}

	// Missing ids are a no-op, not an error.
	if err := store.DeleteMoodEntry("never-existed"); err != nil {
		t.Errorf("DeleteMoodEntry(missing) error = %v", err)
	}
}

func TestActivityRoundTrip(t *testing.T) {
	store := newTestStore(t)

	log := models.ActivityLog{ID: "a1", Name: "Exercise", Date: "2024-03-15", Completed: true}
	if err := store.SaveActivity(log); err != nil {
		t.Fatalf("SaveActivity() error = %v", err)
	}

	got, err := store.GetActivity("a1")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if !reflect.DeepEqual(got, log) {
		t.Errorf("GetActivity() = %+v, want %+v", got, log)
	}

	if _, err := store.GetActivity("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetActivity(missing) error = %v, want ErrNotFound", err)
	}
}

func TestActivityQueries(t *testing.T) {
	store := newTestStore(t)

	for _, a := range []models.ActivityLog{
		{ID: "a1", Name: "Exercise", Date: "2024-03-14", Completed: true},
		{ID: "a2", Name: "Exercise", Date: "2024-03-15", Completed: false},
		{ID: "a3", Name: "Reading", Date: "2024-03-15", Completed: true},
	} {
		if err := store.SaveActivity(a); err != nil {
			t.Fatalf("SaveActivity(%s) error = %v", a.ID, err)
		}
	}

	byDate, err := store.GetActivitiesByDate("2024-03-15")
	if err != nil {
		t.Fatalf("GetActivitiesByDate() error = %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("got %d logs for 2024-03-15, want 2", len(byDate))
	}

	byName, err := store.GetActivitiesByName("Exercise")
	if err != nil {
		t.Fatalf("GetActivitiesByName() error = %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("got %d Exercise logs, want 2", len(byName))
	}

	// Name matching is exact, not case-folded.
	byName, err = store.GetActivitiesByName("exercise")
	if err != nil {
		t.Fatalf("GetActivitiesByName() error = %v", err)
	}
	if len(byName) != 0 {
		t.Errorf("got %d exercise logs, want 0", len(byName))
	}
}

func TestDeleteActivityMissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	if err := store.DeleteActivity("never-existed"); err != nil {
		t.Errorf("DeleteActivity(missing) error = %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := models.UserSettings{
		CustomMoodTags:   []string{"calm", "焦虑"},
		CustomActivities: []string{"Meditation"},
		Theme:            models.ThemeDark,
		AppTheme:         models.ThemeOceanBlue,
		ReminderTime:     "21:30",
		IsPremium:        true,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestSettingsEmptyListsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := models.UserSettings{
		Theme:    models.ThemeLight,
		AppTheme: models.ThemeDefault,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.CustomMoodTags != nil || got.CustomActivities != nil {
		t.Errorf("empty lists should read back as nil, got %+v", got)
	}
}

func TestClearMoodDataPreservesSettings(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveMoodEntry(models.MoodEntry{ID: "m1", Date: "2024-03-15", MoodLevel: 3}); err != nil {
		t.Fatalf("SaveMoodEntry() error = %v", err)
	}
	if err := store.SaveActivity(models.ActivityLog{ID: "a1", Name: "Exercise", Date: "2024-03-15"}); err != nil {
		t.Fatalf("SaveActivity() error = %v", err)
	}

	settings, _ := store.GetSettings()
	settings.ReminderTime = "09:00"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	if err := store.ClearMoodData(); err != nil {
		t.Fatalf("ClearMoodData() error = %v", err)
	}

	entries, _ := store.GetAllMoodEntries()
	activities, _ := store.GetAllActivities()
	if len(entries) != 0 || len(activities) != 0 {
		t.Errorf("clear left %d entries and %d activities", len(entries), len(activities))
	}

	after, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after clear error = %v", err)
	}
	if after.ReminderTime != "09:00" {
		t.Error("clear must leave settings intact")
	}
}
