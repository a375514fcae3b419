package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ccdanny/calendar/internal/models"
)

var ErrRecordNotFound = errors.New("record not found")

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) GetByDate(date string) (*models.Record, error) {
	query := `
		SELECT date, type, duration, clock_out_time, note, created_at, updated_at
		FROM records
		WHERE date = ?
	`

	var rec models.Record
	err := r.db.QueryRow(query, date).Scan(
		&rec.Date,
		&rec.Type,
		&rec.Duration,
		&rec.ClockOutTime,
		&rec.Note,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return &rec, nil
}

// ListByDatePrefix returns all records whose date starts with prefix,
// ordered by date. A "YYYY-MM" prefix selects a month, "YYYY" a year.
func (r *RecordRepository) ListByDatePrefix(prefix string) ([]*models.Record, error) {
	query := `
		SELECT date, type, duration, clock_out_time, note, created_at, updated_at
		FROM records
		WHERE date LIKE ? || '%'
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		var rec models.Record
		err := rows.Scan(
			&rec.Date,
			&rec.Type,
			&rec.Duration,
			&rec.ClockOutTime,
			&rec.Note,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, &rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Upsert is the manual edit path: every submitted field replaces the stored
// value unconditionally. A nil clockOut leaves the stored clock-out untouched;
// nil duration/note overwrite with NULL.
func (r *RecordRepository) Upsert(date string, typ models.RecordType, duration *float64, note *string, clockOut *time.Time) (*models.Record, error) {
	query := `
		INSERT INTO records (date, type, duration, note, clock_out_time)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			type = excluded.type,
			duration = excluded.duration,
			note = excluded.note,
			clock_out_time = COALESCE(excluded.clock_out_time, records.clock_out_time),
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, date, typ, duration, note, clockOut); err != nil {
		return nil, fmt.Errorf("failed to upsert record: %w", err)
	}

	return r.GetByDate(date)
}

// ApplyClockOut is the webhook merge: the clock-out time always overwrites,
// type and duration overwrite only for an overtime classification, and the
// note is kept once a record exists. A single statement keeps the
// read-modify-write atomic per date key.
func (r *RecordRepository) ApplyClockOut(date string, clockOut time.Time, typ models.RecordType, duration *float64, note string, overtime bool) (*models.Record, error) {
	query := `
		INSERT INTO records (date, type, duration, note, clock_out_time)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			clock_out_time = excluded.clock_out_time,
			updated_at = CURRENT_TIMESTAMP
	`
	if overtime {
		query = `
			INSERT INTO records (date, type, duration, note, clock_out_time)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(date) DO UPDATE SET
				clock_out_time = excluded.clock_out_time,
				type = excluded.type,
				duration = excluded.duration,
				updated_at = CURRENT_TIMESTAMP
		`
	}

	if _, err := r.db.Exec(query, date, typ, duration, note, clockOut); err != nil {
		return nil, fmt.Errorf("failed to apply clock-out: %w", err)
	}

	return r.GetByDate(date)
}
