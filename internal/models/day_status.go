package models

import "time"

// DayStatus is the derived display status for a calendar date. It is computed
// on read from the record (if any) and the official calendar, never stored.
type DayStatus string

const (
	StatusHolidayOfficial DayStatus = "HOLIDAY_OFFICIAL"
	StatusWeekend         DayStatus = "WEEKEND"
	StatusWorkDefault     DayStatus = "WORK_DEFAULT"
	StatusWork            DayStatus = "WORK"
	StatusOvertime        DayStatus = "OVERTIME"
	StatusLeave           DayStatus = "LEAVE"
)

// DayView is one day of the derived month view. ClockOutTime renders as an
// auxiliary badge independent of the status, so both can be present at once.
type DayView struct {
	Date         string     `json:"date"`
	Status       DayStatus  `json:"status"`
	Duration     *float64   `json:"duration,omitempty"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty"`
	Note         *string    `json:"note,omitempty"`
}
