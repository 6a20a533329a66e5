// Package timeline renders mood entries as a scrollable list grouped by
// recency.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/insights"
	"moodmatrix/internal/models"
)

type DeleteEntryMsg struct {
	ID string
}

type Item struct {
	Entry  models.MoodEntry
	Bucket insights.RecencyBucket
}

func (i Item) Title() string {
	glyph := constants.MoodGlyphs[i.Entry.MoodLevel]
	desc := constants.MoodDescriptions[i.Entry.MoodLevel]
	return fmt.Sprintf("%s %s  %s (%s)", glyph, i.Entry.Date, desc, i.Bucket)
}

func (i Item) Description() string {
	var parts []string
	if len(i.Entry.MoodTags) > 0 {
		parts = append(parts, strings.Join(i.Entry.MoodTags, ", "))
	}
	if i.Entry.JournalNote != "" {
		parts = append(parts, i.Entry.JournalNote)
	}
	if len(parts) == 0 {
		return "no tags or notes"
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string {
	return i.Entry.Date + " " + strings.Join(i.Entry.MoodTags, " ") + " " + i.Entry.JournalNote
}

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.MoodEntry, today time.Time, width, height int) Model {
	l := list.New(buildItems(entries, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Timeline"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.MoodEntry, today time.Time) {
	m.list.SetItems(buildItems(entries, today))
}

func buildItems(entries []models.MoodEntry, today time.Time) []list.Item {
	var items []list.Item
	for _, group := range insights.GroupByRecency(entries, today) {
		for _, entry := range group.Entries {
			items = append(items, Item{Entry: entry, Bucket: group.Bucket})
		}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No mood entries yet.\n  Press 'm' on the Today tab to log one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
