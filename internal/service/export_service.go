package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ccdanny/calendar/internal/models"
	"github.com/ccdanny/calendar/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportColumns = []string{"date", "type", "clockOutTime", "duration", "note"}

type ExportService struct {
	repo   *repository.RecordRepository
	logger *zap.Logger
}

func NewExportService(repo *repository.RecordRepository, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// ExportYearCSV renders all records of a year as flat CSV rows
func (s *ExportService) ExportYearCSV(year string) (*bytes.Buffer, string, error) {
	records, err := s.repo.ListByDatePrefix(year)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(exportRow(rec)); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Info("Year exported",
		zap.String("year", year),
		zap.String("format", "csv"),
		zap.Int("records", len(records)),
	)
	return buf, fmt.Sprintf("work-records-%s.csv", year), nil
}

// ExportYearXLSX renders the same rows as a spreadsheet
func (s *ExportService) ExportYearXLSX(year string) (*bytes.Buffer, string, error) {
	records, err := s.repo.ListByDatePrefix(year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range exportColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellValue(sheet, name+"1", col); err != nil {
			return nil, "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	for rowIdx, rec := range records {
		for colIdx, value := range exportRow(rec) {
			name, _ := excelize.ColumnNumberToName(colIdx + 1)
			cell := fmt.Sprintf("%s%d", name, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate spreadsheet: %w", err)
	}

	s.logger.Info("Year exported",
		zap.String("year", year),
		zap.String("format", "xlsx"),
		zap.Int("records", len(records)),
	)
	return buf, fmt.Sprintf("work-records-%s.xlsx", year), nil
}

func exportRow(rec *models.Record) []string {
	clockOut := ""
	if rec.ClockOutTime != nil {
		clockOut = rec.ClockOutTime.Format(time.RFC3339)
	}
	duration := ""
	if rec.Duration != nil {
		duration = strconv.FormatFloat(*rec.Duration, 'f', -1, 64)
	}
	note := ""
	if rec.Note != nil {
		note = *rec.Note
	}
	return []string{rec.Date, string(rec.Type), clockOut, duration, note}
}
