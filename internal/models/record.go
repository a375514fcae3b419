package models

import "time"

type RecordType string

const (
	RecordTypeWork     RecordType = "WORK"
	RecordTypeOvertime RecordType = "OVERTIME"
	RecordTypeLeave    RecordType = "LEAVE"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeWork, RecordTypeOvertime, RecordTypeLeave:
		return true
	}
	return false
}

// Record is the per-date work status entry. At most one exists per date;
// the date string (YYYY-MM-DD) is the unique key and never changes.
type Record struct {
	Date         string     `json:"date"`
	Type         RecordType `json:"type"`
	Duration     *float64   `json:"duration,omitempty"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty"`
	Note         *string    `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SaveRecordRequest is the manual edit payload. ClockOutTime accepts either an
// absolute RFC3339 timestamp or an HH:mm time of day, which is combined with
// Date on the server. Omitted duration/note are stored as NULL.
type SaveRecordRequest struct {
	Date         string     `json:"date" validate:"required,datetime=2006-01-02"`
	Type         RecordType `json:"type" validate:"omitempty,oneof=WORK OVERTIME LEAVE"`
	Duration     *float64   `json:"duration" validate:"omitempty,gte=0"`
	Note         *string    `json:"note"`
	ClockOutTime *string    `json:"clockOutTime"`
}

// ClockOutRequest is the webhook payload. Timestamp may be Unix seconds,
// Unix milliseconds, or an ISO-8601 string; absent means "now".
type ClockOutRequest struct {
	Timestamp any `json:"timestamp"`
}
