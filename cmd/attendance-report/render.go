package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func formatTime(t *clock.TimeOfDay) string {
	if t == nil {
		return "-"
	}
	return t.String()
}

func renderTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func renderEmployeeReport(w io.Writer, r report.EmployeeReport) {
	renderTitle(w, "Employee: "+r.EmployeeName)

	summary := newTable("Category", "Count")
	for _, c := range r.Summary {
		summary.Row(c.Category, strconv.Itoa(c.Count))
	}
	fmt.Fprintln(w, summary.Render())

	details := newTable("Day", "Time In", "Time Out", "Classification")
	for _, d := range r.Details {
		details.Row(d.DayLabel, formatTime(d.TimeIn), formatTime(d.TimeOut), d.DayClassification)
	}
	fmt.Fprintln(w, details.Render())
	fmt.Fprintln(w)
}

func renderConsolidated(w io.Writer, r report.ConsolidatedReport) {
	renderTitle(w, fmt.Sprintf("Consolidated report: %s (%d employees)", r.SourceFile, r.TotalEmployees))

	t := newTable("Employee", report.CategoryLateUnits, report.CategoryHalfDayIncidents, report.CategoryOneHourLeaves)
	for _, row := range r.Rows {
		t.Row(
			row.EmployeeName,
			strconv.Itoa(row.TotalLateUnits),
			strconv.Itoa(row.TotalHalfDayIncidents),
			strconv.Itoa(row.TotalOneHourLeaves),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderRecords(w io.Writer, records []attendance.ClassifiedRecord) {
	t := newTable("Employee", "Day", "Time In", "Time Out", "IN", "OUT", "Classification")
	for _, r := range records {
		t.Row(
			r.EmployeeName,
			r.DayLabel,
			formatTime(r.TimeIn),
			formatTime(r.TimeOut),
			r.InClassification,
			r.OutClassification,
			r.DayClassification,
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderPolicy(w io.Writer, p attendance.PolicyResponse) {
	renderTitle(w, "Shift policy")

	t := newTable("Setting", "Value").
		Row("Shift start", p.ShiftStart).
		Row("Shift end", p.ShiftEnd).
		Row("Late unit", fmt.Sprintf("%d min", p.LateUnitMinutes)).
		Row("Morning half day", p.MorningHalfDayStart+" - "+p.MorningHalfDayEnd).
		Row("Evening half day", "at or before "+p.EveningHalfDayCutoff).
		Row("1 hour leave", p.OneHourLeaveStart+" - "+p.OneHourLeaveEnd)
	fmt.Fprintln(w, t.Render())
}
