package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
)

// RawGrid is an unlabeled table of cells as read from an export. Rows may
// have different lengths.
type RawGrid [][]string

// Cell returns the value at (row, col), or "" when the position is outside the grid.
func (g RawGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// RowFrom returns the trimmed cells of row starting at col.
func (g RawGrid) RowFrom(row, col int) []string {
	if row < 0 || row >= len(g) || col >= len(g[row]) {
		return []string{}
	}
	cells := make([]string, 0, len(g[row])-col)
	for _, c := range g[row][col:] {
		cells = append(cells, strings.TrimSpace(c))
	}
	return cells
}

// Record is one employee-day recovered from the grid.
type Record struct {
	EmployeeName string
	DayLabel     string
	Status       string
	TimeIn       *clock.TimeOfDay
	TimeOut      *clock.TimeOfDay
}

// HasPunch reports whether at least one of the two times is present.
func (r Record) HasPunch() bool {
	return r.TimeIn != nil || r.TimeOut != nil
}

// Complete reports whether both times are present.
func (r Record) Complete() bool {
	return r.TimeIn != nil && r.TimeOut != nil
}

// InResult is the outcome of checking a time-in against the morning windows.
type InResult struct {
	LateUnits      int
	Label          string
	MorningHalfDay int
}

// OutResult is the outcome of checking a time-out against the evening windows.
type OutResult struct {
	EarlyOutUnits  int
	Label          string
	EveningHalfDay int
}

// ClassifiedRecord is a Record with its policy outcome attached.
type ClassifiedRecord struct {
	Record

	LateUnits         int
	IsMorningHalfDay  int
	EarlyOutUnits     int
	IsEveningHalfDay  int
	InClassification  string
	OutClassification string
	DayClassification string
}

// Window labels.
const (
	LabelMissingIn        = "Missing IN Time"
	LabelMorningHalfDay   = "Half Day Leave (Morning IN)"
	LabelOnTime           = "On Time"
	LabelMissingOut       = "Missing OUT Time"
	LabelOnTimeOrOvertime = "On Time/Overtime"
	LabelOneHourLeave     = "1 Hour Leave"
	LabelEveningHalfDay   = "Half Day Leave (Evening OUT)"
	LabelOtherEarlyOut    = "Other Early Out"
)

// Day labels that are not shared with the window labels above.
const (
	LabelFullDayLeave         = "FULL Day Leave (Morn + Even Half)"
	LabelOneHourLeaveEarlyOut = "1 Hour Leave (Early OUT)"
	LabelIncompleteRecord     = "Incomplete Record"
)
