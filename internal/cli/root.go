// Package cli implements the command surface. Each command is a kong struct
// with a Run method taking the shared Context.
package cli

import (
	"fmt"

	"moodmatrix/internal/app"
	"moodmatrix/internal/backup"
	"moodmatrix/internal/constants"
	"moodmatrix/internal/logger"
	"moodmatrix/internal/models"
	"moodmatrix/internal/storage"
)

// Context carries the shared dependencies into command Run methods.
type Context struct {
	Store storage.Provider

	state *app.App
}

// App returns the application state manager, loading it on first use.
func (c *Context) App() (*app.App, error) {
	if c.state == nil {
		state := app.New(c.Store)
		if err := state.Load(); err != nil {
			return nil, err
		}
		c.state = state
	}
	return c.state, nil
}

// PerformAutomaticBackup creates a backup without interrupting the user's
// workflow on failure.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatMoodLevel renders a mood level as "glyph Label (n/5)".
func FormatMoodLevel(level int) string {
	glyph := constants.MoodGlyphs[level]
	desc := constants.MoodDescriptions[level]
	if desc == "" {
		return fmt.Sprintf("(%d/%d)", level, constants.MoodLevelMax)
	}
	return fmt.Sprintf("%s %s (%d/%d)", glyph, desc, level, constants.MoodLevelMax)
}

// FormatEntryLine renders a one-line summary of a mood entry for lists.
func FormatEntryLine(entry models.MoodEntry) string {
	line := fmt.Sprintf("%s  %s", entry.Date, FormatMoodLevel(entry.MoodLevel))
	if len(entry.MoodTags) > 0 {
		line += "  [" + joinTags(entry.MoodTags) + "]"
	}
	if entry.JournalNote != "" {
		line += "  " + truncate(entry.JournalNote, 40)
	}
	return line
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += tag
	}
	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
