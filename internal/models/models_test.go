package models

import (
	"testing"
	"time"
)

func TestPromptOfTheDayIsDeterministic(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	morning := PromptOfTheDay(day)
	evening := PromptOfTheDay(day.Add(23 * time.Hour))
	if morning.ID != evening.ID {
		t.Errorf("same date returned different prompts: %s vs %s", morning.ID, evening.ID)
	}

	next := PromptOfTheDay(day.AddDate(0, 0, 1))
	if next.ID == morning.ID {
		t.Error("consecutive days should rotate to a different prompt")
	}
}

func TestPromptOfTheDayCyclesThroughCatalog(t *testing.T) {
	seen := map[string]bool{}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < len(ReflectionPrompts); i++ {
		seen[PromptOfTheDay(start.AddDate(0, 0, i)).ID] = true
	}
	if len(seen) != len(ReflectionPrompts) {
		t.Errorf("one full cycle visited %d of %d prompts", len(seen), len(ReflectionPrompts))
	}
}

func TestLookupTheme(t *testing.T) {
	option, ok := LookupTheme(ThemeOceanBlue)
	if !ok {
		t.Fatal("oceanBlue should be in the catalog")
	}
	if option.Name != "Ocean Blue" || option.IsPremium {
		t.Errorf("unexpected option %+v", option)
	}

	if _, ok := LookupTheme("neon"); ok {
		t.Error("unknown theme id should not resolve")
	}
}

func TestRemindersEnabled(t *testing.T) {
	if (UserSettings{}).RemindersEnabled() {
		t.Error("empty reminder time means reminders off")
	}
	if !(UserSettings{ReminderTime: "09:00"}).RemindersEnabled() {
		t.Error("set reminder time means reminders on")
	}
}
