package timeutil

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidInterval is returned when the end of an interval does not come
// strictly after its start.
var ErrInvalidInterval = errors.New("interval end must be after interval start")

// Overlaps reports whether two same-day intervals overlap. Intervals that are
// exactly back-to-back (endA == startB) do not overlap; adjacent shifts are a
// valid schedule.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// DurationHours returns the elapsed hours between a and b, rounded to two
// decimal places.
func DurationHours(a, b time.Time) (float64, error) {
	if !b.After(a) {
		return 0, ErrInvalidInterval
	}
	hours := b.Sub(a).Hours()
	return math.Round(hours*100) / 100, nil
}

// ParseDate parses a calendar date in "YYYY-MM-DD" form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ParseClock parses a time-of-day in "HH:MM" form.
func ParseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

// At combines a calendar date with a time-of-day into a single instant in UTC.
func At(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// FormatDate renders a date in "YYYY-MM-DD" form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock renders a time-of-day in "HH:MM" form.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
