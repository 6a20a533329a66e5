package cli

import (
	"fmt"
	"strings"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/insights"
	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

type MoodLogCmd struct {
	Level    int    `arg:"" help:"Mood level (1-5)."`
	Tags     string `short:"t" help:"Comma-separated mood tags."`
	Note     string `short:"n" help:"Journal note."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
	Time     string `help:"Time of day (HH:MM)."`
	Reflect  string `short:"r" help:"Response to today's reflection prompt."`
	Activity string `short:"a" help:"Comma-separated activity labels for this entry."`
}

func (c *MoodLogCmd) Validate() error {
	if c.Level < constants.MoodLevelMin || c.Level > constants.MoodLevelMax {
		return fmt.Errorf("mood level must be between %d and %d", constants.MoodLevelMin, constants.MoodLevelMax)
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD)")
	}
	if c.Time != "" && !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM)")
	}
	return nil
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	entry := models.MoodEntry{
		Date:       c.Date,
		Time:       c.Time,
		MoodLevel:  c.Level,
		MoodTags:   splitList(c.Tags),
		Activities: splitList(c.Activity),
	}
	entry.JournalNote = c.Note
	if c.Reflect != "" {
		prompt := models.PromptOfTheDay(state.Now())
		entry.ReflectionPrompt = prompt.Text
		entry.ReflectionResponse = c.Reflect
	}

	saved, err := state.AddMoodEntry(entry)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged %s for %s\n", FormatMoodLevel(saved.MoodLevel), saved.Date)
	ctx.PerformAutomaticBackup()
	return nil
}

type MoodTodayCmd struct{}

func (c *MoodTodayCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	entry, ok := state.TodaysMood()
	if !ok {
		prompt := models.PromptOfTheDay(state.Now())
		fmt.Println("No mood logged today.")
		fmt.Printf("Reflection prompt: %s\n", prompt.Text)
		fmt.Println("Log one with 'moodmatrix mood log <1-5>'")
		return nil
	}

	fmt.Printf("Today (%s): %s\n", entry.Date, FormatMoodLevel(entry.MoodLevel))
	if entry.Time != "" {
		fmt.Printf("  Logged at: %s\n", entry.Time)
	}
	if len(entry.MoodTags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(entry.MoodTags, ", "))
	}
	if entry.JournalNote != "" {
		fmt.Printf("  Note: %s\n", entry.JournalNote)
	}
	if entry.ReflectionResponse != "" {
		fmt.Printf("  %s\n", entry.ReflectionPrompt)
		fmt.Printf("    %s\n", entry.ReflectionResponse)
	}
	if len(entry.Activities) > 0 {
		fmt.Printf("  Activities: %s\n", strings.Join(entry.Activities, ", "))
	}
	return nil
}

type MoodListCmd struct {
	Month   string `short:"m" help:"Filter to a month (YYYY-MM)."`
	ShowIDs bool   `help:"Show entry IDs." name:"show-ids"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	entries := state.MoodEntries()
	if len(entries) == 0 {
		fmt.Println("No mood entries found")
		return nil
	}

	groups := insights.GroupByMonth(entries)
	printed := 0
	for _, group := range groups {
		label := fmt.Sprintf("%04d-%02d", group.Key.Year, group.Key.Month)
		if c.Month != "" && label != c.Month {
			continue
		}
		fmt.Printf("%s:\n", label)
		for _, entry := range group.Entries {
			idStr := ""
			if c.ShowIDs {
				idStr = fmt.Sprintf("  (ID: %s)", entry.ID)
			}
			fmt.Printf("  %s%s\n", FormatEntryLine(entry), idStr)
		}
		printed++
	}
	if printed == 0 {
		fmt.Printf("No mood entries found for %s\n", c.Month)
	}
	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"ID of the mood entry to delete."`
}

func (c *MoodDeleteCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}
	if err := state.DeleteMoodEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Mood entry deleted")
	return nil
}

// splitList parses a comma-separated flag value into trimmed parts.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
