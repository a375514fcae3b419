package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical key format for calendar dates
const DateLayout = "2006-01-02"

// MonthLayout is the prefix format used by month range queries
const MonthLayout = "2006-01"

var (
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearRe  = regexp.MustCompile(`^\d{4}$`)
	hhmmRe  = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

// ParseDate parses a calendar date in YYYY-MM-DD form
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// ValidMonth reports whether s is a YYYY-MM month prefix
func ValidMonth(s string) bool {
	if !monthRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// ValidYear reports whether s is a YYYY year prefix
func ValidYear(s string) bool {
	return yearRe.MatchString(s)
}

// IsTimeOfDay reports whether s looks like an HH:mm wall-clock time
func IsTimeOfDay(s string) bool {
	return hhmmRe.MatchString(s)
}

// CombineDateAndTime builds an absolute timestamp from a YYYY-MM-DD date and
// an HH:mm time of day, both passed explicitly, in the given location.
func CombineDateAndTime(dateStr, hhmm string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// DaysInMonth returns the number of calendar days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
