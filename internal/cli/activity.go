package cli

import (
	"fmt"

	"moodmatrix/internal/insights"
	"moodmatrix/internal/models"
	"moodmatrix/internal/utils"
)

type ActivityAddCmd struct {
	Name      string `arg:"" help:"Activity name."`
	Date      string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
	Completed bool   `short:"c" help:"Mark the activity completed."`
}

func (c *ActivityAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD)")
	}
	return nil
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	saved, err := state.AddActivity(models.ActivityLog{
		Name:      c.Name,
		Date:      c.Date,
		Completed: c.Completed,
	})
	if err != nil {
		return err
	}

	status := "pending"
	if saved.Completed {
		status = "completed"
	}
	fmt.Printf("✓ Added %q for %s (%s)\n", saved.Name, saved.Date, status)
	return nil
}

type ActivityQuickCmd struct {
	Name string `arg:"" help:"Activity name to log as completed for today."`
}

func (c *ActivityQuickCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	saved, err := state.QuickAddActivity(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Logged %q as completed for today\n", saved.Name)
	return nil
}

type ActivityToggleCmd struct {
	ID string `arg:"" help:"ID of the activity log to toggle."`
}

func (c *ActivityToggleCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}
	if err := state.ToggleActivity(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Activity toggled")
	return nil
}

type ActivityListCmd struct {
	Date    string `short:"d" help:"Filter to a date (YYYY-MM-DD)."`
	ShowIDs bool   `help:"Show activity IDs." name:"show-ids"`
}

func (c *ActivityListCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	logs := state.Activities()
	if len(logs) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	printed := 0
	for _, log := range logs {
		if c.Date != "" && log.Date != c.Date {
			continue
		}
		mark := "[ ]"
		if log.Completed {
			mark = "[x]"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf("  (ID: %s)", log.ID)
		}
		fmt.Printf("  %s %s  %s%s\n", mark, log.Date, log.Name, idStr)
		printed++
	}
	if printed == 0 {
		fmt.Printf("No activities found for %s\n", c.Date)
	}
	return nil
}

type ActivityStatsCmd struct{}

func (c *ActivityStatsCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}

	logs := state.Activities()
	summaries := insights.SummarizeActivities(logs)
	if len(summaries) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	fmt.Println("Activity stats:")
	for _, s := range summaries {
		fmt.Printf("  %-20s %d/%d completed (%.1f%%), last: %s\n",
			s.Name, s.CompletedCount, s.TotalCount, s.CompletionRate, s.LastLog.Date)
	}

	if name, count, ok := insights.MostConsistentActivity(logs); ok {
		fmt.Printf("\nMost consistent: %s (%d completions)\n", name, count)
	}
	return nil
}

type ActivityDeleteCmd struct {
	ID string `arg:"" help:"ID of the activity log to delete."`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	state, err := ctx.App()
	if err != nil {
		return err
	}
	if err := state.DeleteActivity(c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Activity deleted")
	return nil
}
