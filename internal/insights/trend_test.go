package insights

import (
	"testing"
	"time"

	"moodmatrix/internal/models"
)

func entry(date string, level int) models.MoodEntry {
	return models.MoodEntry{ID: date, Date: date, MoodLevel: level}
}

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return d
}

func TestDetermineTrend(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.MoodEntry
		want    Trend
	}{
		{
			name:    "empty is stable",
			entries: nil,
			want:    TrendStable,
		},
		{
			name:    "single entry is stable",
			entries: []models.MoodEntry{entry("2024-01-10", 5)},
			want:    TrendStable,
		},
		{
			name: "sharp drop is down",
			entries: []models.MoodEntry{
				entry("2024-01-10", 5),
				entry("2024-01-17", 1),
			},
			want: TrendDown,
		},
		{
			name: "steady climb is up",
			entries: []models.MoodEntry{
				entry("2024-01-01", 2),
				entry("2024-01-02", 2),
				entry("2024-01-03", 4),
				entry("2024-01-04", 5),
			},
			want: TrendUp,
		},
		{
			name: "movement below threshold is stable",
			entries: []models.MoodEntry{
				entry("2024-01-01", 3),
				entry("2024-01-02", 3),
				entry("2024-01-03", 3),
				entry("2024-01-04", 3),
			},
			want: TrendStable,
		},
		{
			name: "order independent, sorted before split",
			entries: []models.MoodEntry{
				entry("2024-01-17", 1),
				entry("2024-01-10", 5),
			},
			want: TrendDown,
		},
		{
			name: "odd count gives extra entry to later half",
			entries: []models.MoodEntry{
				entry("2024-01-01", 1),
				entry("2024-01-02", 5),
				entry("2024-01-03", 5),
			},
			want: TrendUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineTrend(tt.entries); got != tt.want {
				t.Errorf("DetermineTrend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntriesInWindow(t *testing.T) {
	entries := []models.MoodEntry{
		entry("2024-03-01", 3),
		entry("2024-03-09", 4),
		entry("2024-03-14", 2),
		entry("2024-03-15", 5),
		entry("2024-03-16", 1), // future relative to today
	}
	today := mustDate(t, "2024-03-15")

	got := EntriesInWindow(entries, today, 7)
	want := map[string]bool{"2024-03-09": true, "2024-03-14": true, "2024-03-15": true}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for _, e := range got {
		if !want[e.Date] {
			t.Errorf("unexpected entry %s in window", e.Date)
		}
	}
}

func TestTrendOverWindow(t *testing.T) {
	entries := []models.MoodEntry{
		entry("2024-03-10", 5),
		entry("2024-03-14", 1),
		// Old high entries outside the window must not mask the drop.
		entry("2024-01-01", 5),
		entry("2024-01-02", 5),
	}
	today := mustDate(t, "2024-03-15")

	if got := TrendOverWindow(entries, today, 7); got != TrendDown {
		t.Errorf("TrendOverWindow() = %v, want down", got)
	}
}

func TestAverageMood(t *testing.T) {
	if got := AverageMood(nil); got != 0 {
		t.Errorf("AverageMood(nil) = %v, want 0", got)
	}

	entries := []models.MoodEntry{
		entry("2024-01-01", 2),
		entry("2024-01-02", 5),
	}
	if got := AverageMood(entries); got != 3.5 {
		t.Errorf("AverageMood() = %v, want 3.5", got)
	}
}

func TestMostCommonMood(t *testing.T) {
	if _, _, ok := MostCommonMood(nil); ok {
		t.Error("MostCommonMood(nil) should report not ok")
	}

	entries := []models.MoodEntry{
		entry("2024-01-01", 4),
		entry("2024-01-02", 4),
		entry("2024-01-03", 2),
		entry("2024-01-04", 2),
		entry("2024-01-05", 5),
	}
	level, count, ok := MostCommonMood(entries)
	if !ok {
		t.Fatal("expected a result")
	}
	// 2 and 4 tie at two apiece; the lower level wins.
	if level != 2 || count != 2 {
		t.Errorf("MostCommonMood() = (%d, %d), want (2, 2)", level, count)
	}
}
