package service

import "github.com/ccdanny/calendar/internal/models"

// ResolveStatus derives the display status for one date. A stored record type
// always governs; with no record the official holiday flag wins over the
// weekend fallback, and a plain working day carries no badge.
func ResolveStatus(rec *models.Record, isHoliday, isWorkday bool) models.DayStatus {
	if rec != nil && rec.Type.Valid() {
		return models.DayStatus(rec.Type)
	}
	if isHoliday {
		return models.StatusHolidayOfficial
	}
	if !isWorkday {
		return models.StatusWeekend
	}
	return models.StatusWorkDefault
}
