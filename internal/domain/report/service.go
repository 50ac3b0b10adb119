package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate per-employee summary and daily detail tables
	GenerateEmployeeReports(ctx context.Context, req EmployeeReportRequest) (EmployeeReportSet, error)

	// Generate one summary table across all employees
	GenerateConsolidatedReport(ctx context.Context, req ConsolidatedReportRequest) (ConsolidatedReport, error)
}
