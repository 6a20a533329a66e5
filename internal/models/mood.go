package models

// MoodEntry is one recorded mood for a calendar date. The date acts as a
// natural key for "today's mood" but the store does not enforce uniqueness,
// so callers must tolerate zero, one, or many entries per date.
type MoodEntry struct {
	ID                 string   `json:"id"`
	Date               string   `json:"date"`           // YYYY-MM-DD format
	Time               string   `json:"time,omitempty"` // HH:MM format, display only
	MoodLevel          int      `json:"mood_level"`     // 1-5 scale
	MoodTags           []string `json:"mood_tags"`
	JournalNote        string   `json:"journal_note,omitempty"`
	ReflectionPrompt   string   `json:"reflection_prompt,omitempty"`
	ReflectionResponse string   `json:"reflection_response,omitempty"`
	Activities         []string `json:"activities"` // labels only, not keys into activity logs
}
