package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Upload errors
	case errors.Is(err, attendance.ErrFileTooLarge):
		PayloadTooLarge(w, "Attendance file exceeds the upload limit")
	case errors.Is(err, attendance.ErrInvalidUpload):
		BadRequest(w, "Failed to parse form data", nil)

	// File format errors
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported attendance file format", nil)
	case errors.Is(err, spreadsheet.ErrCorruptFile):
		BadRequest(w, "Attendance file could not be read", nil)
	case errors.Is(err, spreadsheet.ErrEmptyFile):
		BadRequest(w, "Attendance file is empty", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrGridStructure):
		UnprocessableEntity(w, "Attendance file has an unexpected layout")
	case errors.Is(err, attendance.ErrNoAttendanceData):
		NotFound(w, "No attendance data found in file")

	// Report domain errors
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "No data found for this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
