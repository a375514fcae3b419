package calendar

import "time"

// Authority answers whether a date is an official public holiday and whether
// it is an official working day. The two are not complements: a weekend can be
// declared a compensatory workday, and a weekday can be a holiday.
//
// Lookups are pure in-memory computations so they can never block a request.
type Authority interface {
	// IsHoliday checks if the given date is an official public holiday
	IsHoliday(date time.Time) bool

	// IsWorkday checks if the given date is an official working day
	IsWorkday(date time.Time) bool
}
