package cli

import (
	"fmt"
	"time"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM), defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	anchor := state.Now()
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		anchor = parsed
	}

	// Latest entry per date wins the glyph, matching timeline ordering.
	moodByDate := make(map[string]models.MoodEntry)
	for _, entry := range state.MoodEntries() {
		moodByDate[entry.Date] = entry
	}

	fmt.Printf("%s %d\n", anchor.Month(), anchor.Year())
	fmt.Println("Mo Tu We Th Fr Sa Su")

	days := utils.MonthDays(anchor)
	// Pad to the Monday column of the first day.
	offset := int(days[0].Weekday()-time.Monday+7) % 7
	for i := 0; i < offset; i++ {
		fmt.Print("   ")
	}

	col := offset
	for _, day := range days {
		cell := fmt.Sprintf("%2d", day.Day())
		if entry, ok := moodByDate[utils.FormatDate(day)]; ok {
			cell = constants.MoodGlyphs[entry.MoodLevel]
		}
		fmt.Printf("%s ", cell)
		col++
		if col%7 == 0 {
			fmt.Println()
		}
	}
	if col%7 != 0 {
		fmt.Println()
	}

	fmt.Println()
	for level := constants.MoodLevelMin; level <= constants.MoodLevelMax; level++ {
		fmt.Printf("%s %s  ", constants.MoodGlyphs[level], constants.MoodDescriptions[level])
	}
	fmt.Println()
	return nil
}
