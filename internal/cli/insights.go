package cli

import (
	"fmt"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/insights"
)

type InsightsCmd struct {
	Days int `short:"d" help:"Trend window in days." default:"7"`
}

func (c *InsightsCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *InsightsCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	entries := state.MoodEntries()
	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Log one with 'moodmatrix mood log <1-5>'")
		return nil
	}

	now := state.Now()

	fmt.Printf("Mood insights (%d entries):\n\n", len(entries))

	windowed := insights.EntriesInWindow(entries, now, c.Days)
	fmt.Printf("Last %d days: %d entries, trend %s, average %.1f\n",
		c.Days, len(windowed), insights.DetermineTrend(windowed), insights.AverageMood(windowed))

	longWindow := insights.EntriesInWindow(entries, now, constants.TrendWindowLong)
	fmt.Printf("Last %d days: %d entries, trend %s, average %.1f\n",
		constants.TrendWindowLong, len(longWindow), insights.DetermineTrend(longWindow), insights.AverageMood(longWindow))

	if level, count, ok := insights.MostCommonMood(entries); ok {
		fmt.Printf("Most common mood: %s (%d times)\n", FormatMoodLevel(level), count)
	}

	logs := state.Activities()
	if len(logs) > 0 {
		fmt.Println("\nMood by activity:")
		for _, summary := range insights.SummarizeActivities(logs) {
			corr := insights.Correlate(entries, logs, summary.Name)
			if corr.SampleSize == 0 {
				fmt.Printf("  %-20s no overlapping mood data\n", summary.Name)
				continue
			}
			fmt.Printf("  %-20s %s (avg %.1f over %d days)\n",
				summary.Name, corr.Direction, corr.AverageMood, corr.SampleSize)
		}
	}

	words := insights.WordCloud(entries)
	if len(words) > 0 {
		fmt.Println("\nFrequent words:")
		for _, w := range words {
			fmt.Printf("  %-16s %d\n", w.Text, w.Count)
		}
	}

	return nil
}
