package domain

import (
	"time"
)

const (
	// DateLayout is used for dates in persisted lines and in user input.
	DateLayout = "2006-01-02"
	// DisplayLayout is used for dates in the display form of a task.
	DisplayLayout = "Jan 2 2006"
)

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-mm-dd date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats t as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DisplayDate formats t for display, e.g. "Dec 2 2019".
func DisplayDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
