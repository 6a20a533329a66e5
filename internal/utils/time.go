package utils

import (
	"time"

	"moodmatrix/internal/constants"
)

// FormatDate returns t as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// Today returns today's date string for the given clock reading.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// DaysBefore returns the date string n days before the given day.
func DaysBefore(day time.Time, n int) string {
	return day.AddDate(0, 0, -n).Format(constants.DateFormat)
}

// StartOfWeek returns the Monday of the ISO week containing t, at midnight in
// t's location.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()-time.Monday+7) % 7
	return day.AddDate(0, 0, -offset)
}

// SameWeek reports whether a and b fall in the same Monday-start week.
// Comparison is by calendar date, so mixed locations are safe.
func SameWeek(a, b time.Time) bool {
	return FormatDate(StartOfWeek(a)) == FormatDate(StartOfWeek(b))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// MonthDays returns every date in the calendar month containing t, in order.
func MonthDays(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ValidateDateFormat checks if the string is a valid YYYY-MM-DD date.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
