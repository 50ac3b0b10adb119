package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/attendance-report-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/spreadsheet"
	attendanceService "github.com/cmlabs-hris/attendance-report-go/internal/service/attendance"
	reportService "github.com/cmlabs-hris/attendance-report-go/internal/service/report"
)

var version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env, version)
	slog.SetDefault(logger)

	policy, err := config.LoadShiftPolicy(cfg.Policy.File)
	if err != nil {
		logger.Error("Failed to load shift policy", "file", cfg.Policy.File, "error", err)
		os.Exit(1)
	}

	engine, err := attendanceService.NewRuleEngine(policy)
	if err != nil {
		logger.Error("Failed to initialize rule engine", "error", err)
		os.Exit(1)
	}

	var recordCache attendance.RecordCache
	if cfg.Cache.Entries > 0 {
		recordCache = cache.NewGridCache(cfg.Cache.Entries)
	}

	attendanceSvc := attendanceService.NewAttendanceService(
		spreadsheet.NewReader(),
		recordCache,
		attendanceService.NewExtractor(attendanceService.DefaultLayout(), logger),
		engine,
		cfg.Upload.MaxBytes,
		logger,
	)
	reportSvc := reportService.NewReportService(attendanceSvc, reportService.NewAggregator())

	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Upload.MaxBytes)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, cfg.Upload.MaxBytes)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		reportHandler,
		attendanceHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", "addr", "http://localhost"+server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}
}
