package report

import (
	"sort"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

// Aggregator builds summary tables from classified records. It never
// modifies its input, so repeated runs over the same records agree.
//
// The two modes count half days differently. PerEmployee adds the
// morning and evening flags (a full-day leave counts 2), Consolidated ORs
// them per day (a full-day leave counts 1) and only counts a 1-hour leave on
// days without a half day.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// PerEmployee builds the summary and detail tables for one employee.
func (a *Aggregator) PerEmployee(records []attendance.ClassifiedRecord, employeeName string) (report.EmployeeReport, error) {
	var (
		lateUnits     int
		halfDays      int
		oneHourLeaves int
		details       []report.DailyDetail
	)

	for _, r := range records {
		if r.EmployeeName != employeeName {
			continue
		}
		lateUnits += r.LateUnits
		halfDays += r.IsMorningHalfDay + r.IsEveningHalfDay
		if r.EarlyOutUnits == 1 {
			oneHourLeaves++
		}
		details = append(details, report.DailyDetail{
			EmployeeName:      r.EmployeeName,
			DayLabel:          r.DayLabel,
			TimeIn:            r.TimeIn,
			TimeOut:           r.TimeOut,
			DayClassification: r.DayClassification,
		})
	}

	if len(details) == 0 {
		return report.EmployeeReport{}, report.ErrEmployeeNotFound
	}

	return report.EmployeeReport{
		EmployeeName: employeeName,
		Summary: []report.CategoryCount{
			{Category: report.CategoryLateUnits, Count: lateUnits},
			{Category: report.CategoryHalfDayIncidents, Count: halfDays},
			{Category: report.CategoryOneHourLeaves, Count: oneHourLeaves},
		},
		Details: details,
	}, nil
}

// AllEmployees runs PerEmployee for every employee, names ascending.
func (a *Aggregator) AllEmployees(records []attendance.ClassifiedRecord) []report.EmployeeReport {
	names := EmployeeNames(records)
	reports := make([]report.EmployeeReport, 0, len(names))
	for _, name := range names {
		// Every name comes from records, so PerEmployee cannot miss.
		r, _ := a.PerEmployee(records, name)
		reports = append(reports, r)
	}
	return reports
}

// Consolidated sums incidents per employee, names ascending.
func (a *Aggregator) Consolidated(records []attendance.ClassifiedRecord) []report.EmployeeSummary {
	byName := make(map[string]*report.EmployeeSummary)
	for _, r := range records {
		isHalfDay := 0
		if r.IsMorningHalfDay == 1 || r.IsEveningHalfDay == 1 {
			isHalfDay = 1
		}
		isOneHourLeave := 0
		if isHalfDay == 0 && r.EarlyOutUnits == 1 {
			isOneHourLeave = 1
		}

		s, ok := byName[r.EmployeeName]
		if !ok {
			s = &report.EmployeeSummary{EmployeeName: r.EmployeeName}
			byName[r.EmployeeName] = s
		}
		s.TotalLateUnits += r.LateUnits
		s.TotalHalfDayIncidents += isHalfDay
		s.TotalOneHourLeaves += isOneHourLeave
	}

	rows := make([]report.EmployeeSummary, 0, len(byName))
	for _, s := range byName {
		rows = append(rows, *s)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})
	return rows
}

// EmployeeNames returns the distinct employee names in records, sorted.
func EmployeeNames(records []attendance.ClassifiedRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range records {
		if _, ok := seen[r.EmployeeName]; ok {
			continue
		}
		seen[r.EmployeeName] = struct{}{}
		names = append(names, r.EmployeeName)
	}
	sort.Strings(names)
	return names
}
