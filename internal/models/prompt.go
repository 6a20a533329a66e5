package models

import "time"

// PromptCategory groups reflection prompts by theme
type PromptCategory string

const (
	PromptGratitude PromptCategory = "gratitude"
	PromptGrowth    PromptCategory = "growth"
	PromptAwareness PromptCategory = "awareness"
	PromptGoals     PromptCategory = "goals"
)

// ReflectionPromptOption is one journaling prompt offered alongside a mood entry
type ReflectionPromptOption struct {
	ID       string
	Text     string
	Category PromptCategory
}

var ReflectionPrompts = []ReflectionPromptOption{
	{ID: "awareness-1", Text: "What's one thing that made you feel the way you do today?", Category: PromptAwareness},
	{ID: "gratitude-1", Text: "What are three things you're grateful for right now?", Category: PromptGratitude},
	{ID: "growth-1", Text: "What did you learn about yourself today?", Category: PromptGrowth},
	{ID: "goals-1", Text: "What's one small thing you could do tomorrow to feel better?", Category: PromptGoals},
	{ID: "awareness-2", Text: "When did you feel most like yourself today?", Category: PromptAwareness},
	{ID: "gratitude-2", Text: "Who made a positive difference in your day?", Category: PromptGratitude},
	{ID: "growth-2", Text: "What challenged you today, and how did you respond?", Category: PromptGrowth},
	{ID: "goals-2", Text: "What would make tomorrow feel like a win?", Category: PromptGoals},
}

// PromptOfTheDay returns a deterministic prompt for the given date, rotating
// through the catalog day by day.
func PromptOfTheDay(date time.Time) ReflectionPromptOption {
	idx := date.YearDay() % len(ReflectionPrompts)
	return ReflectionPrompts[idx]
}
