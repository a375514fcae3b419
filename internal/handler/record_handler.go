package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ccdanny/calendar/internal/models"
	"github.com/ccdanny/calendar/internal/service"
	"github.com/ccdanny/calendar/internal/validate"
	"github.com/ccdanny/calendar/pkg/dateutil"

	"go.uber.org/zap"
)

type RecordHandler struct {
	service *service.RecordService
	logger  *zap.Logger
}

func NewRecordHandler(service *service.RecordService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{
		service: service,
		logger:  logger,
	}
}

// GetRecords returns the raw records for a month (GET /api/records?month=YYYY-MM)
func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !dateutil.ValidMonth(month) {
		writeError(w, http.StatusBadRequest, "Month is required (YYYY-MM)")
		return
	}

	records, err := h.service.GetMonth(month)
	if err != nil {
		h.logger.Error("Failed to fetch records", zap.String("month", month), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch records")
		return
	}
	if records == nil {
		records = []*models.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

// GetCalendar returns the derived day statuses for a month
// (GET /api/calendar?month=YYYY-MM)
func (h *RecordHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !dateutil.ValidMonth(month) {
		writeError(w, http.StatusBadRequest, "Month is required (YYYY-MM)")
		return
	}

	views, err := h.service.GetMonthView(month)
	if err != nil {
		h.logger.Error("Failed to build month view", zap.String("month", month), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch records")
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// SaveRecord is the manual edit path (POST /api/records)
func (h *RecordHandler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode save request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "Date is required")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.service.Save(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidClockOutTime) {
			writeError(w, http.StatusBadRequest, "Invalid clock-out time")
			return
		}
		h.logger.Error("Failed to save record", zap.String("date", req.Date), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save record")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// ClockOut ingests the automated clock-out webhook
// (POST /api/webhook/clock-out, secret checked upstream)
func (h *RecordHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req models.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.logger.Warn("Failed to decode webhook request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.service.ClockOut(req.Timestamp)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimestamp) {
			writeError(w, http.StatusBadRequest, "Invalid timestamp")
			return
		}
		h.logger.Error("Failed to process webhook", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"record":  rec,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
