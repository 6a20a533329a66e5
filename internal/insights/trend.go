package insights

import (
	"sort"
	"time"

	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

// Trend classifies the direction of mood over a window.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// trendThreshold is the minimum half-to-half mean difference that counts as
// movement rather than noise.
const trendThreshold = 0.5

// DetermineTrend classifies mood direction across the given entries. Entries
// are sorted oldest first, split at the floor midpoint (the extra entry of an
// odd count goes to the later half), and the mean mood of each half is
// compared. Fewer than two entries is stable by definition.
func DetermineTrend(entries []models.MoodEntry) Trend {
	if len(entries) < 2 {
		return TrendStable
	}

	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	mid := len(sorted) / 2
	diff := AverageMood(sorted[mid:]) - AverageMood(sorted[:mid])

	switch {
	case diff > trendThreshold:
		return TrendUp
	case diff < -trendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// EntriesInWindow returns the entries dated within the last `days` days,
// inclusive of today. Date strings compare lexically, so no parsing is needed.
func EntriesInWindow(entries []models.MoodEntry, today time.Time, days int) []models.MoodEntry {
	start := utils.DaysBefore(today, days)
	end := utils.Today(today)

	var window []models.MoodEntry
	for _, e := range entries {
		if e.Date >= start && e.Date <= end {
			window = append(window, e)
		}
	}
	return window
}

// TrendOverWindow classifies mood direction over the last `days` days.
func TrendOverWindow(entries []models.MoodEntry, today time.Time, days int) Trend {
	return DetermineTrend(EntriesInWindow(entries, today, days))
}

// AverageMood returns the mean mood level, or 0 for no entries.
func AverageMood(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodLevel
	}
	return float64(sum) / float64(len(entries))
}

// MostCommonMood returns the most frequently logged mood level and its count.
// Ties resolve to the lower level. ok is false when there are no entries.
func MostCommonMood(entries []models.MoodEntry) (level, count int, ok bool) {
	if len(entries) == 0 {
		return 0, 0, false
	}

	counts := make(map[int]int)
	for _, e := range entries {
		counts[e.MoodLevel]++
	}
	for l := 1; l <= 5; l++ {
		if counts[l] > count {
			level, count = l, counts[l]
		}
	}
	return level, count, true
}
