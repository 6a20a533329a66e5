package insights

import (
	"fmt"
	"strings"
	"testing"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
)

func noteEntry(date, note string, tags ...string) models.MoodEntry {
	return models.MoodEntry{ID: date, Date: date, MoodLevel: 3, JournalNote: note, MoodTags: tags}
}

func findWord(words []WordCount, text string) (WordCount, bool) {
	for _, w := range words {
		if w.Text == text {
			return w, true
		}
	}
	return WordCount{}, false
}

func TestWordCloud(t *testing.T) {
	entries := []models.MoodEntry{
		noteEntry("2024-03-01", "Great workout today, workout felt amazing!"),
		noteEntry("2024-03-02", "Another workout. Amazing weather."),
	}

	words := WordCloud(entries)

	workout, ok := findWord(words, "workout")
	if !ok || workout.Count != 3 {
		t.Errorf("workout count = %v, want 3", workout.Count)
	}
	amazing, ok := findWord(words, "amazing")
	if !ok || amazing.Count != 2 {
		t.Errorf("amazing count = %v, want 2", amazing.Count)
	}
	// Descending by count.
	if words[0].Text != "workout" {
		t.Errorf("top word = %q, want workout", words[0].Text)
	}
}

func TestWordCloudFiltersShortAndStopWords(t *testing.T) {
	entries := []models.MoodEntry{
		noteEntry("2024-03-01", "this day was good with them from home"),
	}

	words := WordCloud(entries)
	for _, banned := range []string{"this", "with", "from", "day", "was"} {
		if _, ok := findWord(words, banned); ok {
			t.Errorf("%q should be filtered out", banned)
		}
	}
	if _, ok := findWord(words, "good"); !ok {
		t.Error("'good' should survive filtering")
	}
	if _, ok := findWord(words, "home"); !ok {
		t.Error("'home' should survive filtering")
	}
}

func TestWordCloudPunctuationAndCase(t *testing.T) {
	entries := []models.MoodEntry{
		noteEntry("2024-03-01", "Coffee! COFFEE... coffee?"),
	}

	words := WordCloud(entries)
	coffee, ok := findWord(words, "coffee")
	if !ok || coffee.Count != 3 {
		t.Errorf("coffee count = %v, want 3 (case-folded, punctuation stripped)", coffee.Count)
	}
}

func TestWordCloudTagWeight(t *testing.T) {
	entries := []models.MoodEntry{
		noteEntry("2024-03-01", "peaceful peaceful peaceful", "Happy"),
	}

	words := WordCloud(entries)
	happy, ok := findWord(words, "happy")
	if !ok || happy.Count != constants.TagWeightBonus {
		t.Errorf("tag count = %v, want %d", happy.Count, constants.TagWeightBonus)
	}
	// Equal counts: the note word appeared first, so it keeps its rank.
	if words[0].Text != "peaceful" {
		t.Errorf("top word = %q, want peaceful (first-seen tie order)", words[0].Text)
	}
}

func TestWordCloudLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < constants.WordCloudLimit+10; i++ {
		sb.WriteString(fmt.Sprintf("word%04d ", i))
	}
	entries := []models.MoodEntry{noteEntry("2024-03-01", sb.String())}

	words := WordCloud(entries)
	if len(words) != constants.WordCloudLimit {
		t.Errorf("got %d words, want cap of %d", len(words), constants.WordCloudLimit)
	}
}

func TestWordCloudEmpty(t *testing.T) {
	if words := WordCloud(nil); len(words) != 0 {
		t.Errorf("WordCloud(nil) = %v, want empty", words)
	}
}
