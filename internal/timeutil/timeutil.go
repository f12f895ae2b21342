package timeutil

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// CalendarDate keeps the year, month and day value shows in its own location
// and returns them as midnight UTC, so entries compare by date alone.
func CalendarDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats the calendar date of value; keys sort chronologically.
func DayKey(value time.Time) string {
	return value.Format(DateLayout)
}

// WeekKey returns the ISO year and week of value as "YYYY-Www".
func WeekKey(value time.Time) string {
	year, week := value.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey returns the calendar month of value as "YYYY-MM".
func MonthKey(value time.Time) string {
	return value.Format("2006-01")
}
