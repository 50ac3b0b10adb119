package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	maxUploadBytes    int64
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, maxUploadBytes int64) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		maxUploadBytes:    maxUploadBytes,
	}
}

// ListRecords handles POST /attendance/records
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	upload, err := parseUpload(w, r, h.maxUploadBytes)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer upload.Close()

	req := attendance.UploadRequest{
		File:     upload.File,
		Filename: upload.Filename,
		Size:     upload.Size,
	}

	records, err := h.attendanceService.LoadRecords(r.Context(), req)
	if err != nil {
		slog.Error("Failed to load attendance records", "file", req.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	resp := attendance.ListClassifiedRecordResponse{
		SourceFile:   req.Filename,
		TotalRecords: len(records),
		Records:      make([]attendance.ClassifiedRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, attendance.NewClassifiedRecordResponse(rec))
	}

	response.Success(w, resp)
}

// GetPolicy handles GET /policy
func (h *attendanceHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	response.Success(w, attendance.NewPolicyResponse(h.attendanceService.Policy()))
}
