package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moodmatrix/internal/app"
	"moodmatrix/internal/constants"
	"moodmatrix/internal/insights"
	"moodmatrix/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session {
	case StateToday:
		content = docStyle.Render(m.viewToday())
	case StateTimeline:
		content = docStyle.Render(m.timelineModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateInsights:
		content = docStyle.Render(m.viewInsights())
	case StateSettings:
		content = docStyle.Render(m.viewSettings())
	case StateLogMood, StateAddActivity, StateEditSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewNotification(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.session == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewNotification() string {
	n, ok := m.state.Notification()
	if !ok {
		return ""
	}
	style := infoNoticeStyle
	switch n.Severity {
	case app.SeveritySuccess:
		style = successNoticeStyle
	case app.SeverityWarning:
		style = warningNoticeStyle
	case app.SeverityError:
		style = errorNoticeStyle
	}
	return style.Render(" " + n.Message + " (esc to dismiss)")
}

func (m Model) viewToday() string {
	accent := accentStyle(m.state.Settings().AppTheme)
	var b strings.Builder

	b.WriteString(accent.Render("Today - "+m.state.Today()) + "\n\n")

	if entry, ok := m.state.TodaysMood(); ok {
		b.WriteString(fmt.Sprintf("%s %s (%d/%d)\n",
			constants.MoodGlyphs[entry.MoodLevel],
			constants.MoodDescriptions[entry.MoodLevel],
			entry.MoodLevel, constants.MoodLevelMax))
		if len(entry.MoodTags) > 0 {
			b.WriteString(subtleStyle.Render("Tags: "+strings.Join(entry.MoodTags, ", ")) + "\n")
		}
		if entry.JournalNote != "" {
			b.WriteString(entry.JournalNote + "\n")
		}
		if entry.ReflectionResponse != "" {
			b.WriteString(subtleStyle.Render(entry.ReflectionPrompt) + "\n")
			b.WriteString("  " + entry.ReflectionResponse + "\n")
		}
		b.WriteString("\nPress 'm' to edit today's mood.\n")
	} else {
		b.WriteString("No mood logged yet.\n")
		b.WriteString(subtleStyle.Render(models.PromptOfTheDay(m.state.Now()).Text) + "\n")
		b.WriteString("\nPress 'm' to log your mood.\n")
	}

	todays := m.state.TodaysActivities()
	b.WriteString("\n" + titleStyle.Render("Activities") + "\n")
	if len(todays) == 0 {
		b.WriteString(subtleStyle.Render("None logged today. Press 'a' to add one.") + "\n")
	} else {
		for _, log := range todays {
			mark := "○"
			if log.Completed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", mark, log.Name))
		}
	}

	settings := m.state.Settings()
	if settings.RemindersEnabled() {
		b.WriteString("\n" + subtleStyle.Render("Daily reminder at "+settings.ReminderTime) + "\n")
	}

	return b.String()
}

func (m Model) viewInsights() string {
	entries := m.state.MoodEntries()
	if len(entries) == 0 {
		return "\nNo mood entries yet.\nLog a few days to see trends here."
	}

	now := m.state.Now()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood trends") + "\n\n")

	short := insights.EntriesInWindow(entries, now, constants.TrendWindowShort)
	long := insights.EntriesInWindow(entries, now, constants.TrendWindowLong)
	b.WriteString(fmt.Sprintf("Last %d days: %s (avg %.1f, %d entries)\n",
		constants.TrendWindowShort, trendGlyph(insights.DetermineTrend(short)), insights.AverageMood(short), len(short)))
	b.WriteString(fmt.Sprintf("Last %d days: %s (avg %.1f, %d entries)\n",
		constants.TrendWindowLong, trendGlyph(insights.DetermineTrend(long)), insights.AverageMood(long), len(long)))

	if level, count, ok := insights.MostCommonMood(entries); ok {
		b.WriteString(fmt.Sprintf("Most common: %s %s (%d times)\n",
			constants.MoodGlyphs[level], constants.MoodDescriptions[level], count))
	}

	logs := m.state.Activities()
	if len(logs) > 0 {
		b.WriteString("\n" + titleStyle.Render("Mood by activity") + "\n")
		for _, summary := range insights.SummarizeActivities(logs) {
			corr := insights.Correlate(entries, logs, summary.Name)
			if corr.SampleSize == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("%-18s %s (avg %.1f)\n", summary.Name, corr.Direction, corr.AverageMood))
		}
		if name, count, ok := insights.MostConsistentActivity(logs); ok {
			b.WriteString(fmt.Sprintf("\nMost consistent: %s (%d completions)\n", name, count))
		}
	}

	words := insights.WordCloud(entries)
	if len(words) > 0 {
		b.WriteString("\n" + titleStyle.Render("Frequent words") + "\n")
		shown := words
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, w := range shown {
			b.WriteString(fmt.Sprintf("%-14s %d\n", w.Text, w.Count))
		}
	}

	return b.String()
}

func trendGlyph(t insights.Trend) string {
	switch t {
	case insights.TrendUp:
		return "↑ improving"
	case insights.TrendDown:
		return "↓ declining"
	default:
		return "→ stable"
	}
}

func (m Model) viewSettings() string {
	settings := m.state.Settings()
	accent := accentStyle(settings.AppTheme)

	themeName := string(settings.AppTheme)
	if option, ok := models.LookupTheme(settings.AppTheme); ok {
		themeName = option.Name
	}

	reminder := "off"
	if settings.RemindersEnabled() {
		reminder = "daily at " + settings.ReminderTime
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	b.WriteString("Mode:       " + string(settings.Theme) + "\n")
	b.WriteString("Theme:      " + accent.Render(themeName) + "\n")
	b.WriteString("Reminder:   " + reminder + "\n")
	b.WriteString("Premium:    " + fmt.Sprintf("%t", settings.IsPremium) + "\n")
	b.WriteString("Tags:       " + strings.Join(settings.CustomMoodTags, ", ") + "\n")
	b.WriteString("Activities: " + strings.Join(settings.CustomActivities, ", ") + "\n")
	b.WriteString("\nPress enter to edit.\n")
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this mood entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
