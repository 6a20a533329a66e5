// Package app holds the in-memory application state for a running session.
//
// All mutations funnel through App so the cache and the durable store never
// diverge: the cache is only updated after a confirmed durable write. App is
// owned by a single goroutine (the TUI event loop or one CLI command); there
// is no cross-goroutine access, and concurrent processes are last-write-wins
// at the store layer.
package app

import (
	"time"

	"moodmatrix/internal/models"
	"moodmatrix/internal/storage"
	"moodmatrix/internal/utils"
)

// App mediates between consumers and the persistent store, caching the
// current snapshot of entries, activities, and settings.
type App struct {
	store storage.Provider
	clock func() time.Time

	entries    []models.MoodEntry
	activities []models.ActivityLog
	settings   models.UserSettings

	notification *Notification
	lastErr      error
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(a *App) { a.clock = clock }
}

// New creates an App over an opened store. Call Load before reading state.
func New(store storage.Provider, opts ...Option) *App {
	a := &App{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load populates the cache from the store. Called once at startup; afterwards
// the cache tracks every successful mutation.
func (a *App) Load() error {
	settings, err := a.store.GetSettings()
	if err != nil {
		return a.fail("Failed to load settings", err)
	}

	entries, err := a.store.GetAllMoodEntries()
	if err != nil {
		return a.fail("Failed to load mood entries", err)
	}

	activities, err := a.store.GetAllActivities()
	if err != nil {
		return a.fail("Failed to load activities", err)
	}

	a.settings = settings
	a.entries = entries
	a.activities = activities
	return nil
}

// Today returns today's date string, derived from the clock at call time.
func (a *App) Today() string {
	return utils.Today(a.clock())
}

// Now returns the current clock reading.
func (a *App) Now() time.Time {
	return a.clock()
}

// MoodEntries returns a copy of all cached mood entries.
func (a *App) MoodEntries() []models.MoodEntry {
	return cloneEntries(a.entries)
}

// TodaysMood returns the entry recorded for today, if one exists. With
// multiple entries for today (possible, the date is not a unique key) the
// first in cache order wins.
func (a *App) TodaysMood() (models.MoodEntry, bool) {
	today := a.Today()
	for _, e := range a.entries {
		if e.Date == today {
			return cloneEntry(e), true
		}
	}
	return models.MoodEntry{}, false
}

// Activities returns a copy of all cached activity logs.
func (a *App) Activities() []models.ActivityLog {
	out := make([]models.ActivityLog, len(a.activities))
	copy(out, a.activities)
	return out
}

// TodaysActivities returns the activity logs dated today.
func (a *App) TodaysActivities() []models.ActivityLog {
	today := a.Today()
	var out []models.ActivityLog
	for _, act := range a.activities {
		if act.Date == today {
			out = append(out, act)
		}
	}
	return out
}

// Settings returns a copy of the cached settings.
func (a *App) Settings() models.UserSettings {
	return cloneSettings(a.settings)
}

// Notification returns the current transient notification, if any.
func (a *App) Notification() (Notification, bool) {
	if a.notification == nil {
		return Notification{}, false
	}
	return *a.notification, true
}

// AcknowledgeNotification clears the notification slot.
func (a *App) AcknowledgeNotification() {
	a.notification = nil
}

// LastError returns the most recent storage error, for diagnostic display.
func (a *App) LastError() error {
	return a.lastErr
}

func (a *App) notify(message string, severity Severity) {
	a.notification = &Notification{Message: message, Severity: severity}
}

func cloneEntry(e models.MoodEntry) models.MoodEntry {
	e.MoodTags = append([]string(nil), e.MoodTags...)
	e.Activities = append([]string(nil), e.Activities...)
	return e
}

func cloneEntries(entries []models.MoodEntry) []models.MoodEntry {
	out := make([]models.MoodEntry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneSettings(s models.UserSettings) models.UserSettings {
	s.CustomMoodTags = append([]string(nil), s.CustomMoodTags...)
	s.CustomActivities = append([]string(nil), s.CustomActivities...)
	return s
}
