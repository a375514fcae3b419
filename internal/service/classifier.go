package service

import (
	"fmt"
	"math"
	"time"

	"github.com/ccdanny/calendar/internal/models"
	"github.com/ccdanny/calendar/pkg/dateutil"
)

// Classification is the outcome of classifying a clock-out instant
type Classification struct {
	Type     models.RecordType
	Duration *float64 // hours past the cutoff, only set for overtime
	Note     string
}

// Classifier maps a clock-out instant to a record type and overtime duration.
// Clock-outs at or after the cutoff hour (local wall clock at a fixed UTC
// offset) count as overtime; the duration is computed from the hour and
// minute components only, so it is insensitive to seconds.
type Classifier struct {
	cutoffHour int
	loc        *time.Location
}

func NewClassifier(cutoffHour, tzOffsetHours int) *Classifier {
	name := fmt.Sprintf("UTC%+d", tzOffsetHours)
	return &Classifier{
		cutoffHour: cutoffHour,
		loc:        time.FixedZone(name, tzOffsetHours*3600),
	}
}

// Location returns the fixed zone all local-time decisions are made in
func (c *Classifier) Location() *time.Location {
	return c.loc
}

// LocalDate returns the calendar date the instant falls on in the fixed zone
func (c *Classifier) LocalDate(t time.Time) string {
	return t.In(c.loc).Format(dateutil.DateLayout)
}

// Classify converts the instant to local wall-clock time and decides whether
// it is a plain clock-out or overtime past the cutoff
func (c *Classifier) Classify(t time.Time) Classification {
	local := t.In(c.loc)

	if local.Hour() < c.cutoffHour {
		return Classification{
			Type: models.RecordTypeWork,
			Note: "auto clock-out",
		}
	}

	hours := float64(local.Hour()-c.cutoffHour) + float64(local.Minute())/60
	hours = math.Round(hours*100) / 100

	return Classification{
		Type:     models.RecordTypeOvertime,
		Duration: &hours,
		Note:     "auto overtime",
	}
}
