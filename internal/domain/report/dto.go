package report

import (
	"io"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// Summary categories, in display order.
const (
	CategoryLateUnits        = "Total 15 Min Late Units"
	CategoryHalfDayIncidents = "Total Half Day Incidents"
	CategoryOneHourLeaves    = "Total 1 Hour Leaves"
)

// ========================================
// PER-EMPLOYEE REPORT
// ========================================

type EmployeeReportRequest struct {
	File     io.Reader `json:"-"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`

	// Employee restricts the report to one name; empty means every employee.
	Employee string `json:"employee,omitempty"`
}

func (r *EmployeeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || validator.IsEmpty(r.Filename) {
		errs.Add("file", "attendance file is required")
	}
	if r.Employee != "" && validator.IsEmpty(r.Employee) {
		errs.Add("employee", "employee must not be blank")
	}

	return errs.Err()
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DailyDetail struct {
	EmployeeName      string           `json:"employee_name"`
	DayLabel          string           `json:"day_label"`
	TimeIn            *clock.TimeOfDay `json:"time_in"`
	TimeOut           *clock.TimeOfDay `json:"time_out"`
	DayClassification string           `json:"day_classification"`
}

type EmployeeReport struct {
	EmployeeName string          `json:"employee_name"`
	Summary      []CategoryCount `json:"summary"`
	Details      []DailyDetail   `json:"details"`
}

type EmployeeReportSet struct {
	ReportID    string                    `json:"report_id"`
	GeneratedAt string                    `json:"generated_at"`
	SourceFile  string                    `json:"source_file"`
	Policy      attendance.PolicyResponse `json:"policy"`

	Employees []EmployeeReport `json:"employees"`
}

// ========================================
// CONSOLIDATED REPORT
// ========================================

type ConsolidatedReportRequest struct {
	File     io.Reader `json:"-"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
}

func (r *ConsolidatedReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || validator.IsEmpty(r.Filename) {
		errs.Add("file", "attendance file is required")
	}

	return errs.Err()
}

type EmployeeSummary struct {
	EmployeeName          string `json:"employee_name"`
	TotalLateUnits        int    `json:"late_units"`
	TotalHalfDayIncidents int    `json:"half_day_incidents"`
	TotalOneHourLeaves    int    `json:"one_hour_leaves"`
}

type ConsolidatedReport struct {
	ReportID    string                    `json:"report_id"`
	GeneratedAt string                    `json:"generated_at"`
	SourceFile  string                    `json:"source_file"`
	Policy      attendance.PolicyResponse `json:"policy"`

	TotalEmployees int               `json:"total_employees"`
	Rows           []EmployeeSummary `json:"rows"`
}
