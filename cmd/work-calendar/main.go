package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ccdanny/calendar/internal/auth"
	"github.com/ccdanny/calendar/internal/calendar"
	"github.com/ccdanny/calendar/internal/config"
	"github.com/ccdanny/calendar/internal/database"
	"github.com/ccdanny/calendar/internal/handler"
	"github.com/ccdanny/calendar/internal/logger"
	"github.com/ccdanny/calendar/internal/repository"
	"github.com/ccdanny/calendar/internal/router"
	"github.com/ccdanny/calendar/internal/server"
	"github.com/ccdanny/calendar/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting work-calendar server",
		zap.String("env", cfg.Env),
		zap.String("config_path", *configPath),
	)

	// Initialize database
	db, err := database.New(cfg.StoragePath, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Build the official calendar dataset: local file wins, then the remote
	// feed, then the packaged data
	dataset := loadCalendar(cfg, log.Logger)

	// Wire repository, services and handlers
	recordRepo := repository.NewRecordRepository(db.DB)
	classifier := service.NewClassifier(cfg.Overtime.CutoffHour, cfg.Overtime.TZOffsetHours)
	recordService := service.NewRecordService(recordRepo, dataset, classifier, log.Logger)
	exportService := service.NewExportService(recordRepo, log.Logger)

	recordHandler := handler.NewRecordHandler(recordService, log.Logger)
	exportHandler := handler.NewExportHandler(exportService, log.Logger)

	verifier := auth.NewStaticSecret(cfg.Webhook.Secret)

	var static http.Handler
	if cfg.Static.Enabled {
		static = server.NewStaticServer(cfg.Static.Dir, log.Logger)
	} else {
		log.Info("Static file serving disabled in configuration")
	}

	mux := router.New(recordHandler, exportHandler, static, verifier, log.Logger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTP.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Warn("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("Work-calendar server stopped")
}

// loadCalendar picks the calendar authority source in priority order
func loadCalendar(cfg *config.Config, log *zap.Logger) *calendar.Dataset {
	if cfg.Calendar.DatasetFile != "" {
		dataset, err := calendar.LoadFile(cfg.Calendar.DatasetFile, log)
		if err == nil {
			return dataset
		}
		log.Warn("Failed to load calendar dataset file, trying other sources",
			zap.String("file", cfg.Calendar.DatasetFile),
			zap.Error(err))
	}

	if cfg.Calendar.RemoteURL != "" {
		remote := calendar.NewRemoteSource(
			cfg.Calendar.RemoteURL,
			time.Duration(cfg.Calendar.FetchTimeout)*time.Second,
			log,
		)
		year := time.Now().Year()
		dataset, err := remote.FetchYears(year-1, year, year+1)
		if err == nil {
			return dataset
		}
		log.Warn("Failed to fetch remote calendar, using packaged data", zap.Error(err))
	}

	log.Info("Using packaged calendar dataset")
	return calendar.Default()
}
