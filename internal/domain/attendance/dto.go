package attendance

import (
	"io"

	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// ========================================
// UPLOAD DTOs
// ========================================

// AllowedExtensions lists the export formats the grid readers understand.
var AllowedExtensions = []string{".xlsx", ".xlsm", ".xls", ".csv", ".txt"}

type UploadRequest struct {
	File     io.Reader `json:"-"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	MaxSize  int64     `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || validator.IsEmpty(r.Filename) {
		errs.Add("file", "attendance file is required")
	} else if !validator.HasExtension(r.Filename, AllowedExtensions) {
		errs.Add("file", "invalid file type: only xlsx, xlsm, xls, csv, txt allowed")
	} else if r.MaxSize > 0 && r.Size > r.MaxSize {
		errs.Add("file", "attendance file size exceeds the upload limit")
	}

	return errs.Err()
}

// ========================================
// RESPONSE DTOs
// ========================================

type ClassifiedRecordResponse struct {
	EmployeeName      string           `json:"employee_name"`
	DayLabel          string           `json:"day_label"`
	TimeIn            *clock.TimeOfDay `json:"time_in"`
	TimeOut           *clock.TimeOfDay `json:"time_out"`
	LateUnits         int              `json:"late_units"`
	IsMorningHalfDay  int              `json:"is_morning_half_day"`
	EarlyOutUnits     int              `json:"early_out_units"`
	IsEveningHalfDay  int              `json:"is_evening_half_day"`
	InClassification  string           `json:"in_classification"`
	OutClassification string           `json:"out_classification"`
	DayClassification string           `json:"day_classification"`
}

type ListClassifiedRecordResponse struct {
	SourceFile   string                     `json:"source_file"`
	TotalRecords int                        `json:"total_records"`
	Records      []ClassifiedRecordResponse `json:"records"`
}

func NewClassifiedRecordResponse(r ClassifiedRecord) ClassifiedRecordResponse {
	return ClassifiedRecordResponse{
		EmployeeName:      r.EmployeeName,
		DayLabel:          r.DayLabel,
		TimeIn:            r.TimeIn,
		TimeOut:           r.TimeOut,
		LateUnits:         r.LateUnits,
		IsMorningHalfDay:  r.IsMorningHalfDay,
		EarlyOutUnits:     r.EarlyOutUnits,
		IsEveningHalfDay:  r.IsEveningHalfDay,
		InClassification:  r.InClassification,
		OutClassification: r.OutClassification,
		DayClassification: r.DayClassification,
	}
}

type PolicyResponse struct {
	ShiftStart           string `json:"shift_start"`
	ShiftEnd             string `json:"shift_end"`
	LateUnitMinutes      int    `json:"late_unit_minutes"`
	MorningHalfDayStart  string `json:"morning_half_day_start"`
	MorningHalfDayEnd    string `json:"morning_half_day_end"`
	EveningHalfDayCutoff string `json:"evening_half_day_cutoff"`
	OneHourLeaveStart    string `json:"one_hour_leave_start"`
	OneHourLeaveEnd      string `json:"one_hour_leave_end"`
}

func NewPolicyResponse(p ShiftPolicy) PolicyResponse {
	return PolicyResponse{
		ShiftStart:           p.ShiftStart.String(),
		ShiftEnd:             p.ShiftEnd.String(),
		LateUnitMinutes:      p.LateUnitMinutes(),
		MorningHalfDayStart:  p.MorningHalfDayStart.String(),
		MorningHalfDayEnd:    p.MorningHalfDayEnd.String(),
		EveningHalfDayCutoff: p.EveningHalfDayCutoff.String(),
		OneHourLeaveStart:    p.OneHourLeaveStart.String(),
		OneHourLeaveEnd:      p.OneHourLeaveEnd.String(),
	}
}
