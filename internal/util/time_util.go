package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func SameDay(t1, t2 time.Time) bool {
	return t1.Format(layout) == t2.Format(layout)
}

// MonthKey derives the calendar-month bucket key from the date's own
// year and month, never from a timezone-shifted now.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// ParseMonthKey turns a "YYYY-MM" key back into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse("2006-01", key)
}

func FormatISODate(t time.Time) string {
	return t.Format(layout)
}

func ParseISODate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}
