// Package tui implements the interactive terminal interface: tabbed views
// over the application state with forms for logging moods and activities.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"moodmatrix/internal/app"
	"moodmatrix/internal/tui/components/habits"
	"moodmatrix/internal/tui/components/timeline"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateTimeline
	StateHabits
	StateInsights
	StateSettings
	StateLogMood
	StateAddActivity
	StateEditSettings
	StateConfirmDelete
)

// tabCount is the number of cycleable tabs; form and confirm states sit
// outside the tab cycle.
const tabCount = 5

var tabTitles = []string{"Today", "Timeline", "Habits", "Insights", "Settings"}

type MoodFormModel struct {
	Level      int
	Tags       []string
	Note       string
	Reflection string
	Activities []string
}

type ActivityFormModel struct {
	Name      string
	Completed bool
}

type SettingsFormModel struct {
	Mode       string
	ThemeID    string
	Reminder   string
	Tags       string
	Activities string
}

type Model struct {
	state *app.App

	session       SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	timelineModel timeline.Model
	habitsModel   habits.Model

	form         *huh.Form
	moodForm     *MoodFormModel
	activityForm *ActivityFormModel
	settingsForm *SettingsFormModel

	entryToDeleteID string

	quitting bool
	width    int
	height   int
}

func NewModel(state *app.App) Model {
	return Model{
		state:         state,
		session:       StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		timelineModel: timeline.New(state.MoodEntries(), state.Now(), 0, 0),
		habitsModel:   habits.New(state.TodaysActivities(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.session {
	case StateToday:
		keys = append(keys, m.keys.LogMood, m.keys.Add)
	case StateTimeline:
		keys = append(keys, m.keys.Delete)
	case StateHabits:
		keys = append(keys, m.keys.Add)
	case StateSettings:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Dismiss}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.session {
	case StateToday:
		actions = []key.Binding{m.keys.LogMood, m.keys.Add}
	case StateTimeline:
		actions = []key.Binding{m.keys.Delete}
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the state snapshots into the list components.
func (m *Model) refresh() {
	m.timelineModel.SetEntries(m.state.MoodEntries(), m.state.Now())
	m.habitsModel.SetActivities(m.state.TodaysActivities())
}
