package router

import (
	"net/http"
	"strings"

	"github.com/ccdanny/calendar/internal/auth"
	"github.com/ccdanny/calendar/internal/handler"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

func New(
	recordHandler *handler.RecordHandler,
	exportHandler *handler.ExportHandler,
	static http.Handler,
	verifier auth.SecretVerifier,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Record endpoints
	mux.HandleFunc("/api/records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			recordHandler.GetRecords(w, r)
		case http.MethodPost:
			recordHandler.SaveRecord(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/calendar", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		recordHandler.GetCalendar(w, r)
	})

	// Webhook, guarded by the shared secret
	mux.HandleFunc("/api/webhook/clock-out", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !verifier.Verify(r.Header.Get("X-Secret-Key")) {
			logger.Warn("Webhook secret mismatch", zap.String("remote_addr", r.RemoteAddr))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Invalid secret key"}`))
			return
		}
		recordHandler.ClockOut(w, r)
	})

	mux.HandleFunc("/api/export", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		exportHandler.ExportYear(w, r)
	})

	// Static frontend for everything outside /api, when enabled
	if static != nil {
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api") {
				http.NotFound(w, r)
				return
			}
			static.ServeHTTP(w, r)
		})
	}

	// Request-ID + logging middleware
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" || len(rid) > 64 {
			rid = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, rid)

		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("request_id", rid),
		)
		mux.ServeHTTP(w, r)
	})
}
