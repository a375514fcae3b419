package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ccdanny/calendar/internal/database"
	"github.com/ccdanny/calendar/internal/models"

	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *RecordRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRecordRepository(db.DB)
}

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func TestRecordRepository_UpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)

	rec, err := repo.Upsert("2025-03-10", models.RecordTypeOvertime, ptrF(3), ptrS("release night"), nil)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if rec.Date != "2025-03-10" || rec.Type != models.RecordTypeOvertime {
		t.Errorf("Upsert() = %s/%s, want 2025-03-10/OVERTIME", rec.Date, rec.Type)
	}
	if rec.Duration == nil || *rec.Duration != 3 {
		t.Errorf("Upsert() duration = %v, want 3", rec.Duration)
	}

	got, err := repo.GetByDate("2025-03-10")
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if got.Note == nil || *got.Note != "release night" {
		t.Errorf("GetByDate() note = %v, want release night", got.Note)
	}
}

func TestRecordRepository_GetByDate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByDate("2025-03-10")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetByDate() error = %v, want ErrRecordNotFound", err)
	}
}

func TestRecordRepository_UpsertIsAuthoritative(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.Upsert("2025-03-10", models.RecordTypeOvertime, ptrF(3), ptrS("late"), nil); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	// Manual save of LEAVE with no duration clears the stored duration
	rec, err := repo.Upsert("2025-03-10", models.RecordTypeLeave, nil, nil, nil)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if rec.Type != models.RecordTypeLeave {
		t.Errorf("type = %s, want LEAVE", rec.Type)
	}
	if rec.Duration != nil {
		t.Errorf("duration = %v, want nil", *rec.Duration)
	}
	if rec.Note != nil {
		t.Errorf("note = %v, want nil", *rec.Note)
	}
}

func TestRecordRepository_UpsertKeepsClockOutWhenOmitted(t *testing.T) {
	repo := newTestRepo(t)
	clockOut := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

	if _, err := repo.Upsert("2025-03-10", models.RecordTypeWork, nil, nil, &clockOut); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	rec, err := repo.Upsert("2025-03-10", models.RecordTypeLeave, nil, nil, nil)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if rec.ClockOutTime == nil || rec.ClockOutTime.Unix() != clockOut.Unix() {
		t.Errorf("clockOutTime = %v, want %v", rec.ClockOutTime, clockOut)
	}
}

func TestRecordRepository_ApplyClockOut_Create(t *testing.T) {
	repo := newTestRepo(t)
	clockOut := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	rec, err := repo.ApplyClockOut("2025-03-10", clockOut, models.RecordTypeWork, nil, "auto clock-out", false)
	if err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}
	if rec.Type != models.RecordTypeWork {
		t.Errorf("type = %s, want WORK", rec.Type)
	}
	if rec.Duration != nil {
		t.Errorf("duration = %v, want nil", *rec.Duration)
	}
	if rec.ClockOutTime == nil || rec.ClockOutTime.Unix() != clockOut.Unix() {
		t.Errorf("clockOutTime = %v, want %v", rec.ClockOutTime, clockOut)
	}
	if rec.Note == nil || *rec.Note != "auto clock-out" {
		t.Errorf("note = %v, want auto clock-out", rec.Note)
	}
}

func TestRecordRepository_ApplyClockOut_NeverDowngrades(t *testing.T) {
	repo := newTestRepo(t)

	overtimeAt := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)
	if _, err := repo.ApplyClockOut("2025-03-10", overtimeAt, models.RecordTypeOvertime, ptrF(0.5), "auto overtime", true); err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}

	// A later non-overtime ping only moves the clock-out time
	laterAt := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	rec, err := repo.ApplyClockOut("2025-03-10", laterAt, models.RecordTypeWork, nil, "auto clock-out", false)
	if err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}

	if rec.Type != models.RecordTypeOvertime {
		t.Errorf("type = %s, want OVERTIME preserved", rec.Type)
	}
	if rec.Duration == nil || *rec.Duration != 0.5 {
		t.Errorf("duration = %v, want 0.5 preserved", rec.Duration)
	}
	if rec.ClockOutTime == nil || rec.ClockOutTime.Unix() != laterAt.Unix() {
		t.Errorf("clockOutTime = %v, want %v", rec.ClockOutTime, laterAt)
	}
}

func TestRecordRepository_ApplyClockOut_UpgradesToOvertime(t *testing.T) {
	repo := newTestRepo(t)

	workAt := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	if _, err := repo.ApplyClockOut("2025-03-10", workAt, models.RecordTypeWork, nil, "auto clock-out", false); err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}

	overtimeAt := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	rec, err := repo.ApplyClockOut("2025-03-10", overtimeAt, models.RecordTypeOvertime, ptrF(1), "auto overtime", true)
	if err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}

	if rec.Type != models.RecordTypeOvertime {
		t.Errorf("type = %s, want OVERTIME", rec.Type)
	}
	if rec.Duration == nil || *rec.Duration != 1 {
		t.Errorf("duration = %v, want 1", rec.Duration)
	}
}

func TestRecordRepository_ApplyClockOut_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

	first, err := repo.ApplyClockOut("2025-03-10", at, models.RecordTypeOvertime, ptrF(0.5), "auto overtime", true)
	if err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}
	second, err := repo.ApplyClockOut("2025-03-10", at, models.RecordTypeOvertime, ptrF(0.5), "auto overtime", true)
	if err != nil {
		t.Fatalf("ApplyClockOut() error = %v", err)
	}

	if first.Type != second.Type || *first.Duration != *second.Duration ||
		first.ClockOutTime.Unix() != second.ClockOutTime.Unix() {
		t.Error("repeated identical clock-outs must converge to the same stored state")
	}
}

func TestRecordRepository_ListByDatePrefix(t *testing.T) {
	repo := newTestRepo(t)

	for _, d := range []string{"2025-03-10", "2025-03-02", "2025-04-01", "2024-03-15"} {
		if _, err := repo.Upsert(d, models.RecordTypeWork, nil, nil, nil); err != nil {
			t.Fatalf("Upsert(%s) error = %v", d, err)
		}
	}

	month, err := repo.ListByDatePrefix("2025-03")
	if err != nil {
		t.Fatalf("ListByDatePrefix() error = %v", err)
	}
	if len(month) != 2 {
		t.Fatalf("month records = %d, want 2", len(month))
	}
	if month[0].Date != "2025-03-02" || month[1].Date != "2025-03-10" {
		t.Errorf("month records out of order: %s, %s", month[0].Date, month[1].Date)
	}

	year, err := repo.ListByDatePrefix("2025")
	if err != nil {
		t.Fatalf("ListByDatePrefix() error = %v", err)
	}
	if len(year) != 3 {
		t.Errorf("year records = %d, want 3", len(year))
	}
}

func TestRecordRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	clockOut := time.Date(2025, 3, 10, 19, 45, 0, 0, time.UTC)

	saved, err := repo.Upsert("2025-03-10", models.RecordTypeOvertime, ptrF(1.25), ptrS("deploy"), &clockOut)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	listed, err := repo.ListByDatePrefix("2025-03")
	if err != nil {
		t.Fatalf("ListByDatePrefix() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("records = %d, want 1", len(listed))
	}

	got := listed[0]
	if got.Date != saved.Date || got.Type != saved.Type {
		t.Errorf("round trip changed key fields: %+v vs %+v", got, saved)
	}
	if *got.Duration != *saved.Duration {
		t.Errorf("duration = %v, want %v", *got.Duration, *saved.Duration)
	}
	if *got.Note != *saved.Note {
		t.Errorf("note = %q, want %q", *got.Note, *saved.Note)
	}
	if got.ClockOutTime.Unix() != clockOut.Unix() {
		t.Errorf("clockOutTime = %v, want %v", got.ClockOutTime, clockOut)
	}
}
