package cli

import (
	"fmt"

	"moodmatrix/internal/insights"
)

type TimelineCmd struct {
	ShowIDs bool `help:"Show entry IDs." name:"show-ids"`
}

func (c *TimelineCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	entries := state.MoodEntries()
	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Log one with 'moodmatrix mood log <1-5>'")
		return nil
	}

	for _, group := range insights.GroupByRecency(entries, state.Now()) {
		fmt.Printf("%s:\n", group.Bucket)
		for _, entry := range group.Entries {
			idStr := ""
			if c.ShowIDs {
				idStr = fmt.Sprintf("  (ID: %s)", entry.ID)
			}
			fmt.Printf("  %s%s\n", FormatEntryLine(entry), idStr)
		}
		fmt.Println()
	}
	return nil
}
