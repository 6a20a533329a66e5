package insights

import (
	"testing"
	"time"

	"moodmatrix/internal/models"
)

func TestGroupByMonth(t *testing.T) {
	entries := []models.MoodEntry{
		entry("2024-02-10", 3),
		entry("2024-01-05", 4),
		entry("2024-02-01", 2),
		{ID: "bad", Date: "not-a-date", MoodLevel: 3},
	}

	groups := GroupByMonth(entries)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != (MonthKey{Year: 2024, Month: time.January}) {
		t.Errorf("first group = %+v, want January 2024", groups[0].Key)
	}
	if groups[1].Key != (MonthKey{Year: 2024, Month: time.February}) {
		t.Errorf("second group = %+v, want February 2024", groups[1].Key)
	}
	// Input order survives within a group.
	if groups[1].Entries[0].Date != "2024-02-10" || groups[1].Entries[1].Date != "2024-02-01" {
		t.Errorf("February entries out of input order: %v", groups[1].Entries)
	}
}

func TestGroupByRecency(t *testing.T) {
	// Friday 2024-03-15. The Monday-start week runs 03-11 through 03-17.
	today := mustDate(t, "2024-03-15")

	entries := []models.MoodEntry{
		entry("2024-03-15", 4), // today
		entry("2024-03-14", 3), // yesterday
		entry("2024-03-11", 2), // this week (Monday)
		entry("2024-03-10", 5), // Sunday of last week, still March
		entry("2024-03-01", 1), // this month
		entry("2024-02-20", 3), // earlier
	}

	groups := GroupByRecency(entries, today)

	want := []struct {
		bucket RecencyBucket
		dates  []string
	}{
		{BucketToday, []string{"2024-03-15"}},
		{BucketYesterday, []string{"2024-03-14"}},
		{BucketThisWeek, []string{"2024-03-11"}},
		{BucketThisMonth, []string{"2024-03-10", "2024-03-01"}},
		{BucketEarlier, []string{"2024-02-20"}},
	}

	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Bucket != w.bucket {
			t.Errorf("group %d bucket = %q, want %q", i, groups[i].Bucket, w.bucket)
			continue
		}
		if len(groups[i].Entries) != len(w.dates) {
			t.Errorf("%s has %d entries, want %d", w.bucket, len(groups[i].Entries), len(w.dates))
			continue
		}
		for j, date := range w.dates {
			if groups[i].Entries[j].Date != date {
				t.Errorf("%s entry %d = %s, want %s", w.bucket, j, groups[i].Entries[j].Date, date)
			}
		}
	}
}

func TestGroupByRecencyOmitsEmptyBuckets(t *testing.T) {
	today := mustDate(t, "2024-03-15")
	groups := GroupByRecency([]models.MoodEntry{entry("2023-06-01", 3)}, today)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Bucket != BucketEarlier {
		t.Errorf("bucket = %q, want Earlier", groups[0].Bucket)
	}
}

func TestGroupByRecencyMondayWeekBoundary(t *testing.T) {
	// Monday: yesterday is Sunday of the previous week, so nothing from last
	// week may leak into "This Week".
	today := mustDate(t, "2024-03-11")

	entries := []models.MoodEntry{
		entry("2024-03-10", 3), // Sunday, yesterday
		entry("2024-03-09", 4), // Saturday last week, same month
	}

	groups := GroupByRecency(entries, today)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Bucket != BucketYesterday {
		t.Errorf("first bucket = %q, want Yesterday", groups[0].Bucket)
	}
	if groups[1].Bucket != BucketThisMonth {
		t.Errorf("second bucket = %q, want This Month", groups[1].Bucket)
	}
}

func TestGroupByRecencyUnparseableDates(t *testing.T) {
	today := mustDate(t, "2024-03-15")
	groups := GroupByRecency([]models.MoodEntry{
		{ID: "bad", Date: "garbage", MoodLevel: 3},
	}, today)

	if len(groups) != 1 || groups[0].Bucket != BucketEarlier {
		t.Errorf("unparseable dates should land in Earlier, got %v", groups)
	}
}
