// Package insights derives display views from mood and activity snapshots.
//
// Every function is pure and total: the current date is always an explicit
// parameter, empty inputs yield well-defined empty results, and nothing here
// performs I/O.
package insights

import (
	"sort"
	"time"

	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthGroup is the set of entries recorded in one calendar month, in the
// input's order.
type MonthGroup struct {
	Key     MonthKey
	Entries []models.MoodEntry
}

// GroupByMonth partitions entries into calendar-month buckets. Entries whose
// date fails to parse are skipped. Groups are returned oldest month first;
// entries keep their input order within a group.
func GroupByMonth(entries []models.MoodEntry) []MonthGroup {
	byKey := make(map[MonthKey][]models.MoodEntry)
	var keys []MonthKey
	for _, e := range entries {
		d, err := utils.ParseDate(e.Date)
		if err != nil {
			continue
		}
		key := MonthKey{Year: d.Year(), Month: d.Month()}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], e)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Month < keys[j].Month
	})

	groups := make([]MonthGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, MonthGroup{Key: key, Entries: byKey[key]})
	}
	return groups
}

// RecencyBucket labels how recent an entry is relative to a reference date.
type RecencyBucket string

const (
	BucketToday     RecencyBucket = "Today"
	BucketYesterday RecencyBucket = "Yesterday"
	BucketThisWeek  RecencyBucket = "This Week"
	BucketThisMonth RecencyBucket = "This Month"
	BucketEarlier   RecencyBucket = "Earlier"
)

// recencyBucketOrder is the fixed display order of timeline groups.
var recencyBucketOrder = []RecencyBucket{
	BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth, BucketEarlier,
}

// RecencyGroup is one timeline section.
type RecencyGroup struct {
	Bucket  RecencyBucket
	Entries []models.MoodEntry
}

// GroupByRecency sorts entries newest first and assigns each to exactly one
// recency bucket relative to today. "This Week" means the Monday-start week
// containing today; "This Month" the calendar month containing today. Empty
// buckets are omitted; non-empty buckets appear in fixed order from Today to
// Earlier. Entries with unparseable dates land in Earlier.
func GroupByRecency(entries []models.MoodEntry, today time.Time) []RecencyGroup {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	byBucket := make(map[RecencyBucket][]models.MoodEntry)
	for _, e := range sorted {
		bucket := bucketFor(e.Date, today)
		byBucket[bucket] = append(byBucket[bucket], e)
	}

	var groups []RecencyGroup
	for _, bucket := range recencyBucketOrder {
		if len(byBucket[bucket]) > 0 {
			groups = append(groups, RecencyGroup{Bucket: bucket, Entries: byBucket[bucket]})
		}
	}
	return groups
}

func bucketFor(date string, today time.Time) RecencyBucket {
	d, err := utils.ParseDate(date)
	if err != nil {
		return BucketEarlier
	}
	switch {
	case utils.SameDay(d, today):
		return BucketToday
	case utils.SameDay(d, today.AddDate(0, 0, -1)):
		return BucketYesterday
	case utils.SameWeek(d, today):
		return BucketThisWeek
	case utils.SameMonth(d, today):
		return BucketThisMonth
	default:
		return BucketEarlier
	}
}
