package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ccdanny/calendar/internal/calendar"
	"github.com/ccdanny/calendar/internal/models"
	"github.com/ccdanny/calendar/internal/repository"
	"github.com/ccdanny/calendar/pkg/dateutil"

	"go.uber.org/zap"
)

// ErrInvalidClockOutTime marks a malformed manual clock-out value
var ErrInvalidClockOutTime = errors.New("invalid clock-out time")

type RecordService struct {
	repo       *repository.RecordRepository
	cal        calendar.Authority
	classifier *Classifier
	logger     *zap.Logger
}

func NewRecordService(repo *repository.RecordRepository, cal calendar.Authority, classifier *Classifier, logger *zap.Logger) *RecordService {
	return &RecordService{
		repo:       repo,
		cal:        cal,
		classifier: classifier,
		logger:     logger,
	}
}

// GetMonth returns the raw records for a YYYY-MM month
func (s *RecordService) GetMonth(month string) ([]*models.Record, error) {
	return s.repo.ListByDatePrefix(month)
}

// Save is the manual edit path: the human override always wins, so every
// submitted field replaces the stored value. An HH:mm clock-out time is
// combined with the submitted date; an absolute timestamp is taken as-is.
func (s *RecordService) Save(req *models.SaveRecordRequest) (*models.Record, error) {
	typ := req.Type
	if typ == "" {
		typ = models.RecordTypeWork
	}

	var clockOut *time.Time
	if req.ClockOutTime != nil && *req.ClockOutTime != "" {
		raw := *req.ClockOutTime
		if dateutil.IsTimeOfDay(raw) {
			t, err := dateutil.CombineDateAndTime(req.Date, raw, s.classifier.Location())
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidClockOutTime, err)
			}
			clockOut = &t
		} else {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidClockOutTime, raw)
			}
			clockOut = &t
		}
	}

	rec, err := s.repo.Upsert(req.Date, typ, req.Duration, req.Note, clockOut)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Record saved",
		zap.String("date", rec.Date),
		zap.String("type", string(rec.Type)),
	)
	return rec, nil
}

// ClockOut ingests an automated clock-out event. The instant is classified
// against the overtime cutoff and merged into the record for its local
// calendar date: the clock-out time always updates, but type and duration
// only upgrade to overtime, so repeated pings never downgrade an existing
// overtime or manually recorded leave day.
func (s *RecordService) ClockOut(rawTimestamp any) (*models.Record, error) {
	instant, err := ParseInstant(rawTimestamp, time.Now)
	if err != nil {
		return nil, err
	}

	class := s.classifier.Classify(instant)
	date := s.classifier.LocalDate(instant)

	rec, err := s.repo.ApplyClockOut(date, instant, class.Type, class.Duration, class.Note,
		class.Type == models.RecordTypeOvertime)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Clock-out recorded",
		zap.String("date", date),
		zap.String("classified_type", string(class.Type)),
		zap.String("stored_type", string(rec.Type)),
	)
	return rec, nil
}

// GetMonthView returns the derived status for every day of a YYYY-MM month,
// combining stored records with the official calendar
func (s *RecordService) GetMonthView(month string) ([]models.DayView, error) {
	records, err := s.repo.ListByDatePrefix(month)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	first, err := time.ParseInLocation(dateutil.MonthLayout, month, s.classifier.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	days := dateutil.DaysInMonth(first.Year(), first.Month())
	views := make([]models.DayView, 0, days)
	for d := 0; d < days; d++ {
		date := first.AddDate(0, 0, d)
		key := date.Format(dateutil.DateLayout)
		rec := byDate[key]

		view := models.DayView{
			Date:   key,
			Status: ResolveStatus(rec, s.cal.IsHoliday(date), s.cal.IsWorkday(date)),
		}
		if rec != nil {
			view.Duration = rec.Duration
			view.ClockOutTime = rec.ClockOutTime
			view.Note = rec.Note
		}
		views = append(views, view)
	}

	return views, nil
}
