package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"moodmatrix/internal/app"
	"moodmatrix/internal/models"
	"moodmatrix/internal/tui/components/habits"
	"moodmatrix/internal/tui/components/timeline"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.session == StateLogMood {
		return m.updateLogMood(msg)
	}
	if m.session == StateAddActivity {
		return m.updateAddActivity(msg)
	}
	if m.session == StateEditSettings {
		return m.updateEditSettings(msg)
	}
	if m.session == StateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.timelineModel.SetSize(msg.Width-h, msg.Height-v-4)
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-4)

	case timeline.DeleteEntryMsg:
		m.previousState = m.session
		m.entryToDeleteID = msg.ID
		m.session = StateConfirmDelete
		return m, nil

	case habits.AddActivityMsg:
		m.openActivityForm()
		return m, m.form.Init()

	case habits.ToggleActivityMsg:
		if err := m.state.ToggleActivity(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case habits.DeleteActivityMsg:
		if err := m.state.DeleteActivity(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.session = (m.session + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.session = (m.session - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Dismiss):
			m.state.AcknowledgeNotification()
			return m, nil
		case key.Matches(msg, m.keys.LogMood) && m.session == StateToday:
			m.openMoodForm()
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Add) && (m.session == StateToday || m.session == StateHabits):
			m.openActivityForm()
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Enter) && m.session == StateSettings:
			m.openSettingsForm()
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	switch m.session {
	case StateTimeline:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) openMoodForm() {
	m.previousState = m.session
	m.moodForm = &MoodFormModel{Level: 3}
	if entry, ok := m.state.TodaysMood(); ok {
		m.moodForm.Level = entry.MoodLevel
		m.moodForm.Tags = entry.MoodTags
		m.moodForm.Note = entry.JournalNote
		m.moodForm.Reflection = entry.ReflectionResponse
		m.moodForm.Activities = entry.Activities
	}
	m.form = newMoodForm(m.moodForm, m.state.Settings(), models.PromptOfTheDay(m.state.Now()))
	m.session = StateLogMood
}

func (m *Model) openActivityForm() {
	m.previousState = m.session
	m.activityForm = &ActivityFormModel{Completed: true}
	m.form = newActivityForm(m.activityForm)
	m.session = StateAddActivity
}

func (m *Model) openSettingsForm() {
	m.previousState = m.session
	settings := m.state.Settings()
	m.settingsForm = &SettingsFormModel{
		Mode:       string(settings.Theme),
		ThemeID:    string(settings.AppTheme),
		Reminder:   settings.ReminderTime,
		Tags:       strings.Join(settings.CustomMoodTags, ", "),
		Activities: strings.Join(settings.CustomActivities, ", "),
	}
	m.form = newSettingsForm(m.settingsForm, settings)
	m.session = StateEditSettings
}

func (m Model) updateLogMood(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.session = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		entry := models.MoodEntry{
			MoodLevel:   m.moodForm.Level,
			MoodTags:    m.moodForm.Tags,
			JournalNote: m.moodForm.Note,
			Activities:  m.moodForm.Activities,
		}
		if m.moodForm.Reflection != "" {
			entry.ReflectionPrompt = models.PromptOfTheDay(m.state.Now()).Text
			entry.ReflectionResponse = m.moodForm.Reflection
		}

		var err error
		if existing, ok := m.state.TodaysMood(); ok {
			entry.ID = existing.ID
			entry.Date = existing.Date
			entry.Time = existing.Time
			err = m.state.UpdateMoodEntry(entry)
		} else {
			_, err = m.state.AddMoodEntry(entry)
		}

		if err == nil {
			m.refresh()
			m.session = m.previousState
		} else {
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.session = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAddActivity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.session = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.state.AddActivity(models.ActivityLog{
			Name:      strings.TrimSpace(m.activityForm.Name),
			Completed: m.activityForm.Completed,
		})
		if err == nil {
			m.refresh()
			m.session = m.previousState
		} else {
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.session = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.session = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		mode := models.ThemeMode(m.settingsForm.Mode)
		theme := models.AppTheme(m.settingsForm.ThemeID)
		reminder := strings.TrimSpace(m.settingsForm.Reminder)
		tags := splitCommaList(m.settingsForm.Tags)
		activities := splitCommaList(m.settingsForm.Activities)

		err := m.state.UpdateSettings(app.SettingsPatch{
			Theme:            &mode,
			AppTheme:         &theme,
			ReminderTime:     &reminder,
			CustomMoodTags:   &tags,
			CustomActivities: &activities,
		})
		if err == nil {
			m.session = m.previousState
		} else {
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.session = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.state.DeleteMoodEntry(m.entryToDeleteID); err == nil {
				m.refresh()
			}
			m.entryToDeleteID = ""
			m.session = m.previousState
		case "n", "N", "esc":
			m.entryToDeleteID = ""
			m.session = m.previousState
		}
	}
	return m, nil
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
