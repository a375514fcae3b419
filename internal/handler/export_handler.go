package handler

import (
	"net/http"

	"github.com/ccdanny/calendar/internal/service"
	"github.com/ccdanny/calendar/pkg/dateutil"

	"go.uber.org/zap"
)

type ExportHandler struct {
	service *service.ExportService
	logger  *zap.Logger
}

func NewExportHandler(service *service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger,
	}
}

// ExportYear streams a year's records as a CSV attachment, or XLSX with
// format=xlsx (GET /api/export?year=YYYY)
func (h *ExportHandler) ExportYear(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	if !dateutil.ValidYear(year) {
		writeError(w, http.StatusBadRequest, "Year is required")
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "csv":
		buf, filename, err := h.service.ExportYearCSV(year)
		if err != nil {
			h.logger.Error("Export failed", zap.String("year", year), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Export failed")
			return
		}
		writeAttachment(w, "text/csv", filename, buf.Bytes())
	case "xlsx":
		buf, filename, err := h.service.ExportYearXLSX(year)
		if err != nil {
			h.logger.Error("Export failed", zap.String("year", year), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Export failed")
			return
		}
		writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, buf.Bytes())
	default:
		writeError(w, http.StatusBadRequest, "Unsupported format")
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
