package attendance

import "errors"

// Attendance domain errors
var (
	// Upload errors
	ErrFileTooLarge  = errors.New("attendance file exceeds the upload limit")
	ErrInvalidUpload = errors.New("invalid attendance upload")

	// Parsing errors
	ErrGridStructure    = errors.New("attendance grid has an unexpected structure")
	ErrNoAttendanceData = errors.New("no attendance data found in file")
)
