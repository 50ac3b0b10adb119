package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	aggregator        *Aggregator
	now               func() time.Time
}

func NewReportService(attendanceService attendance.AttendanceService, aggregator *Aggregator) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		aggregator:        aggregator,
		now:               time.Now,
	}
}

// GenerateEmployeeReports generates the per-employee summary and detail tables
func (s *ReportServiceImpl) GenerateEmployeeReports(ctx context.Context, req report.EmployeeReportRequest) (report.EmployeeReportSet, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.EmployeeReportSet{}, err
	}

	records, err := s.attendanceService.LoadRecords(ctx, attendance.UploadRequest{
		File:     req.File,
		Filename: req.Filename,
		Size:     req.Size,
	})
	if err != nil {
		return report.EmployeeReportSet{}, err
	}

	var employees []report.EmployeeReport
	if req.Employee != "" {
		employeeReport, err := s.aggregator.PerEmployee(records, req.Employee)
		if err != nil {
			return report.EmployeeReportSet{}, fmt.Errorf("employee %q: %w", req.Employee, err)
		}
		employees = []report.EmployeeReport{employeeReport}
	} else {
		employees = s.aggregator.AllEmployees(records)
	}

	return report.EmployeeReportSet{
		ReportID:    uuid.New().String(),
		GeneratedAt: s.now().Format(time.RFC3339),
		SourceFile:  req.Filename,
		Policy:      attendance.NewPolicyResponse(s.attendanceService.Policy()),
		Employees:   employees,
	}, nil
}

// GenerateConsolidatedReport generates one summary row per employee
func (s *ReportServiceImpl) GenerateConsolidatedReport(ctx context.Context, req report.ConsolidatedReportRequest) (report.ConsolidatedReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.ConsolidatedReport{}, err
	}

	records, err := s.attendanceService.LoadRecords(ctx, attendance.UploadRequest{
		File:     req.File,
		Filename: req.Filename,
		Size:     req.Size,
	})
	if err != nil {
		return report.ConsolidatedReport{}, err
	}

	rows := s.aggregator.Consolidated(records)

	return report.ConsolidatedReport{
		ReportID:       uuid.New().String(),
		GeneratedAt:    s.now().Format(time.RFC3339),
		SourceFile:     req.Filename,
		Policy:         attendance.NewPolicyResponse(s.attendanceService.Policy()),
		TotalEmployees: len(rows),
		Rows:           rows,
	}, nil
}
