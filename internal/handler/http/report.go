package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Per-employee summary and detail tables
	GetEmployeeReports(w http.ResponseWriter, r *http.Request)

	// One summary row per employee
	GetConsolidatedReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService  report.ReportService
	maxUploadBytes int64
}

func NewReportHandler(reportService report.ReportService, maxUploadBytes int64) ReportHandler {
	return &reportHandlerImpl{
		reportService:  reportService,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetEmployeeReports handles POST /reports/employees
func (h *reportHandlerImpl) GetEmployeeReports(w http.ResponseWriter, r *http.Request) {
	upload, err := parseUpload(w, r, h.maxUploadBytes)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer upload.Close()

	req := report.EmployeeReportRequest{
		File:     upload.File,
		Filename: upload.Filename,
		Size:     upload.Size,
		Employee: r.URL.Query().Get("employee"),
	}

	result, err := h.reportService.GenerateEmployeeReports(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate employee reports", "file", req.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetConsolidatedReport handles POST /reports/consolidated
func (h *reportHandlerImpl) GetConsolidatedReport(w http.ResponseWriter, r *http.Request) {
	upload, err := parseUpload(w, r, h.maxUploadBytes)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer upload.Close()

	req := report.ConsolidatedReportRequest{
		File:     upload.File,
		Filename: upload.Filename,
		Size:     upload.Size,
	}

	result, err := h.reportService.GenerateConsolidatedReport(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate consolidated report", "file", req.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
