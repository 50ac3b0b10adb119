package attendance

import (
	"context"
)

// AttendanceService turns an uploaded export into classified daily records.
type AttendanceService interface {
	// ExtractRecords recovers present-day records from a raw grid
	ExtractRecords(ctx context.Context, grid RawGrid) ([]Record, error)

	// LoadRecords reads, extracts and classifies an uploaded file
	LoadRecords(ctx context.Context, req UploadRequest) ([]ClassifiedRecord, error)

	// Policy returns the shift policy records are classified against
	Policy() ShiftPolicy
}
