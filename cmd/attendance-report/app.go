package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/spreadsheet"
	attendanceService "github.com/cmlabs-hris/attendance-report-go/internal/service/attendance"
	reportService "github.com/cmlabs-hris/attendance-report-go/internal/service/report"
)

// App holds the services one CLI invocation works with.
type App struct {
	attendance attendance.AttendanceService
	reports    report.ReportService
	logger     *slog.Logger
}

// Init wires the services. policyFile overrides POLICY_FILE when set.
func (a *App) Init(policyFile string, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if policyFile == "" {
		policyFile = cfg.Policy.File
	}
	policy, err := config.LoadShiftPolicy(policyFile)
	if err != nil {
		return err
	}

	engine, err := attendanceService.NewRuleEngine(policy)
	if err != nil {
		return err
	}

	// One file per run, so there is nothing to cache and no upload limit.
	a.attendance = attendanceService.NewAttendanceService(
		spreadsheet.NewReader(),
		nil,
		attendanceService.NewExtractor(attendanceService.DefaultLayout(), a.logger),
		engine,
		0,
		a.logger,
	)
	a.reports = reportService.NewReportService(a.attendance, reportService.NewAggregator())
	return nil
}

type inputFile struct {
	*os.File
	name string
	size int64
}

func openInput(path string) (*inputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &inputFile{File: f, name: filepath.Base(path), size: info.Size()}, nil
}

func (a *App) EmployeeReports(ctx context.Context, w io.Writer, path, employee string) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	set, err := a.reports.GenerateEmployeeReports(ctx, report.EmployeeReportRequest{
		File:     in,
		Filename: in.name,
		Size:     in.size,
		Employee: employee,
	})
	if err != nil {
		return a.noData(w, in.name, employee, err)
	}

	for _, r := range set.Employees {
		renderEmployeeReport(w, r)
	}
	return nil
}

func (a *App) ConsolidatedReport(ctx context.Context, w io.Writer, path string) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := a.reports.GenerateConsolidatedReport(ctx, report.ConsolidatedReportRequest{
		File:     in,
		Filename: in.name,
		Size:     in.size,
	})
	if err != nil {
		return a.noData(w, in.name, "", err)
	}

	renderConsolidated(w, result)
	return nil
}

func (a *App) Records(ctx context.Context, w io.Writer, path string) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	records, err := a.attendance.LoadRecords(ctx, attendance.UploadRequest{
		File:     in,
		Filename: in.name,
		Size:     in.size,
	})
	if err != nil {
		return a.noData(w, in.name, "", err)
	}

	renderRecords(w, records)
	return nil
}

func (a *App) Policy(w io.Writer) {
	renderPolicy(w, attendance.NewPolicyResponse(a.attendance.Policy()))
}

// noData prints a message for empty results and passes other errors through.
func (a *App) noData(w io.Writer, filename, employee string, err error) error {
	switch {
	case errors.Is(err, attendance.ErrNoAttendanceData):
		fmt.Fprintf(w, "No attendance data found in %s.\n", filename)
		return nil
	case errors.Is(err, report.ErrEmployeeNotFound):
		fmt.Fprintf(w, "No data found for employee %q in %s.\n", employee, filename)
		return nil
	default:
		a.logger.Error("Failed to process attendance file", "file", filename, "error", err)
		return err
	}
}
