package insights

import "moodmatrix/internal/models"

// ActivitySummary aggregates every log sharing one activity name.
type ActivitySummary struct {
	Name           string
	TotalCount     int
	CompletedCount int
	CompletionRate float64 // percentage, 0 when TotalCount is 0
	LastLog        models.ActivityLog
}

// SummarizeActivities groups logs by exact name and computes per-name totals,
// completion rate, and the most recent occurrence (latest date; the earliest-
// seen log wins a date tie). Names appear in first-encountered order.
func SummarizeActivities(logs []models.ActivityLog) []ActivitySummary {
	byName := make(map[string]*ActivitySummary)
	var order []string

	for _, log := range logs {
		summary, ok := byName[log.Name]
		if !ok {
			summary = &ActivitySummary{Name: log.Name, LastLog: log}
			byName[log.Name] = summary
			order = append(order, log.Name)
		}
		summary.TotalCount++
		if log.Completed {
			summary.CompletedCount++
		}
		if log.Date > summary.LastLog.Date {
			summary.LastLog = log
		}
	}

	summaries := make([]ActivitySummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		if s.TotalCount > 0 {
			s.CompletionRate = float64(s.CompletedCount) / float64(s.TotalCount) * 100
		}
		summaries = append(summaries, *s)
	}
	return summaries
}

// MostConsistentActivity returns the activity name with the most completed
// logs and that count. Ties resolve to the first-encountered name. ok is
// false when nothing has been completed.
func MostConsistentActivity(logs []models.ActivityLog) (name string, count int, ok bool) {
	counts := make(map[string]int)
	var order []string
	for _, log := range logs {
		if !log.Completed {
			continue
		}
		if _, seen := counts[log.Name]; !seen {
			order = append(order, log.Name)
		}
		counts[log.Name]++
	}

	for _, n := range order {
		if counts[n] > count {
			name, count = n, counts[n]
		}
	}
	return name, count, count > 0
}

// CorrelationDirection is the qualitative mood/activity relationship.
type CorrelationDirection string

const (
	CorrelationPositive CorrelationDirection = "positive"
	CorrelationNegative CorrelationDirection = "negative"
	CorrelationNeutral  CorrelationDirection = "neutral"
)

// Correlation describes average mood on days an activity was completed.
type Correlation struct {
	Direction   CorrelationDirection
	AverageMood float64
	SampleSize  int // number of mood entries on completed days
}

// Correlate computes the mood/activity correlation for one activity name:
// the mean mood level across entries sharing a date with a completed log of
// that activity. With no overlapping entries the result is neutral with
// average 0. A mean above 3 is positive, below 3 negative, exactly 3 neutral.
func Correlate(entries []models.MoodEntry, logs []models.ActivityLog, name string) Correlation {
	completedDates := make(map[string]bool)
	for _, log := range logs {
		if log.Name == name && log.Completed {
			completedDates[log.Date] = true
		}
	}
	if len(completedDates) == 0 {
		return Correlation{Direction: CorrelationNeutral}
	}

	var overlapping []models.MoodEntry
	for _, e := range entries {
		if completedDates[e.Date] {
			overlapping = append(overlapping, e)
		}
	}
	if len(overlapping) == 0 {
		return Correlation{Direction: CorrelationNeutral}
	}

	avg := AverageMood(overlapping)
	direction := CorrelationNeutral
	switch {
	case avg > 3:
		direction = CorrelationPositive
	case avg < 3:
		direction = CorrelationNegative
	}

	return Correlation{Direction: direction, AverageMood: avg, SampleSize: len(overlapping)}
}
