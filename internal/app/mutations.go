package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"moodmatrix/internal/logger"
	"moodmatrix/internal/models"
	"moodmatrix/internal/validation"
)

// fail records a storage error: it is logged, cached for LastError, surfaced
// as an error notification, and returned to the caller. The data cache is
// never touched on the failure path.
func (a *App) fail(message string, err error) error {
	logger.Error(message, "err", err)
	a.lastErr = err
	a.notify(message, SeverityError)
	return err
}

// AddMoodEntry validates and persists a new mood entry, assigning it an id.
// The saved entry is returned so callers can reference it immediately.
func (a *App) AddMoodEntry(entry models.MoodEntry) (models.MoodEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date == "" {
		entry.Date = a.Today()
	}
	if err := validation.ValidateMoodEntry(entry); err != nil {
		return models.MoodEntry{}, err
	}

	if err := a.store.SaveMoodEntry(entry); err != nil {
		return models.MoodEntry{}, a.fail("Failed to save mood entry", err)
	}

	a.entries = append(a.entries, cloneEntry(entry))
	a.notify("Mood logged", SeveritySuccess)
	return entry, nil
}

// UpdateMoodEntry persists changes to an existing entry and refreshes the
// cached copy in place.
func (a *App) UpdateMoodEntry(entry models.MoodEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("mood entry id is required")
	}
	if err := validation.ValidateMoodEntry(entry); err != nil {
		return err
	}

	if err := a.store.SaveMoodEntry(entry); err != nil {
		return a.fail("Failed to update mood entry", err)
	}

	replaced := false
	for i := range a.entries {
		if a.entries[i].ID == entry.ID {
			a.entries[i] = cloneEntry(entry)
			replaced = true
			break
		}
	}
	if !replaced {
		a.entries = append(a.entries, cloneEntry(entry))
	}
	a.notify("Mood updated", SeveritySuccess)
	return nil
}

// DeleteMoodEntry removes an entry. Deleting an unknown id is a no-op, same
// as at the store layer.
func (a *App) DeleteMoodEntry(id string) error {
	if err := a.store.DeleteMoodEntry(id); err != nil {
		return a.fail("Failed to delete mood entry", err)
	}

	for i := range a.entries {
		if a.entries[i].ID == id {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			break
		}
	}
	a.notify("Mood entry deleted", SeverityInfo)
	return nil
}

// AddActivity validates and persists a new activity log.
func (a *App) AddActivity(activity models.ActivityLog) (models.ActivityLog, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Date == "" {
		activity.Date = a.Today()
	}
	if err := validation.ValidateActivity(activity); err != nil {
		return models.ActivityLog{}, err
	}

	if err := a.store.SaveActivity(activity); err != nil {
		return models.ActivityLog{}, a.fail("Failed to save activity", err)
	}

	a.activities = append(a.activities, activity)
	a.notify(fmt.Sprintf("Activity %q added", activity.Name), SeveritySuccess)
	return activity, nil
}

// QuickAddActivity logs the named activity for today as completed, unless an
// activity with the same name (case-insensitive) already exists for today.
// The duplicate check lives here, not in the store, so deliberate duplicates
// remain possible through AddActivity.
func (a *App) QuickAddActivity(name string) (models.ActivityLog, error) {
	trimmed := strings.TrimSpace(name)
	today := a.Today()
	for _, act := range a.activities {
		if act.Date == today && strings.EqualFold(act.Name, trimmed) {
			return models.ActivityLog{}, fmt.Errorf("activity %q already logged today", trimmed)
		}
	}
	return a.AddActivity(models.ActivityLog{
		Name:      trimmed,
		Date:      today,
		Completed: true,
	})
}

// UpdateActivity persists changes to an existing activity log.
func (a *App) UpdateActivity(activity models.ActivityLog) error {
	if activity.ID == "" {
		return fmt.Errorf("activity id is required")
	}
	if err := validation.ValidateActivity(activity); err != nil {
		return err
	}

	if err := a.store.SaveActivity(activity); err != nil {
		return a.fail("Failed to update activity", err)
	}

	replaced := false
	for i := range a.activities {
		if a.activities[i].ID == activity.ID {
			a.activities[i] = activity
			replaced = true
			break
		}
	}
	if !replaced {
		a.activities = append(a.activities, activity)
	}
	a.notify("Activity updated", SeveritySuccess)
	return nil
}

// ToggleActivity flips the completed flag on an activity log.
func (a *App) ToggleActivity(id string) error {
	for i := range a.activities {
		if a.activities[i].ID != id {
			continue
		}
		updated := a.activities[i]
		updated.Completed = !updated.Completed
		if err := a.store.SaveActivity(updated); err != nil {
			return a.fail("Failed to update activity", err)
		}
		a.activities[i] = updated
		return nil
	}
	return fmt.Errorf("activity %q not found", id)
}

// DeleteActivity removes an activity log. Unknown ids are a no-op.
func (a *App) DeleteActivity(id string) error {
	if err := a.store.DeleteActivity(id); err != nil {
		return a.fail("Failed to delete activity", err)
	}

	for i := range a.activities {
		if a.activities[i].ID == id {
			a.activities = append(a.activities[:i], a.activities[i+1:]...)
			break
		}
	}
	a.notify("Activity deleted", SeverityInfo)
	return nil
}
