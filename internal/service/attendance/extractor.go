package attendance

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
)

// Layout describes where an export keeps its data. Offsets are relative to an
// employee anchor row.
type Layout struct {
	TagColumn       int
	NameColumn      int
	DataStartColumn int

	AnchorPrefix  string
	HeaderTag     string
	NameSeparator string
	PresentCode   string

	StatusOffset  int
	TimeInOffset  int
	TimeOutOffset int
}

// DefaultLayout matches the work duration report export.
func DefaultLayout() Layout {
	return Layout{
		TagColumn:       0,
		NameColumn:      3,
		DataStartColumn: 2,
		AnchorPrefix:    "Employee:",
		HeaderTag:       "Days",
		NameSeparator:   ":",
		PresentCode:     "P",
		StatusOffset:    1,
		TimeInOffset:    2,
		TimeOutOffset:   3,
	}
}

// lastOffset is the furthest sub-row a block needs.
func (l Layout) lastOffset() int {
	return max(l.StatusOffset, l.TimeInOffset, l.TimeOutOffset)
}

type Extractor struct {
	layout Layout
	logger *slog.Logger
}

func NewExtractor(layout Layout, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{layout: layout, logger: logger}
}

// Extract recovers present-day records from grid. A grid without a header row
// or employee blocks yields an empty result and no error. A structural failure
// is reported once as ErrGridStructure, also with an empty result.
func (x *Extractor) Extract(grid attendance.RawGrid) (records []attendance.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			x.logger.Error("Failed to extract attendance grid", "error", r)
			records = []attendance.Record{}
			err = fmt.Errorf("%w: %v", attendance.ErrGridStructure, r)
		}
	}()

	anchors, headerRow := x.scanTags(grid)
	if headerRow < 0 {
		x.logger.Debug("Header row not found", "tag", x.layout.HeaderTag, "rows", len(grid))
		return []attendance.Record{}, nil
	}

	dayLabels := grid.RowFrom(headerRow, x.layout.DataStartColumn)

	records = []attendance.Record{}
	for _, anchor := range anchors {
		block, ok := x.extractBlock(grid, anchor, dayLabels)
		if !ok {
			continue
		}
		for _, r := range block {
			if r.Status == x.layout.PresentCode && r.HasPunch() {
				records = append(records, r)
			}
		}
	}

	return records, nil
}

// scanTags returns anchor row indexes in order and the last header row index (-1 if none).
func (x *Extractor) scanTags(grid attendance.RawGrid) ([]int, int) {
	var anchors []int
	headerRow := -1
	for i := range grid {
		tag := strings.TrimSpace(grid.Cell(i, x.layout.TagColumn))
		switch {
		case strings.HasPrefix(tag, x.layout.AnchorPrefix):
			anchors = append(anchors, i)
		case tag == x.layout.HeaderTag:
			headerRow = i
		}
	}
	return anchors, headerRow
}

// extractBlock zips the day labels with one employee's status, time-in and
// time-out rows. Sequences are cut to the shortest one.
func (x *Extractor) extractBlock(grid attendance.RawGrid, anchor int, dayLabels []string) ([]attendance.Record, bool) {
	rawName := strings.TrimSpace(grid.Cell(anchor, x.layout.NameColumn))
	if rawName == "" {
		x.logger.Debug("Skipping employee block without name", "row", anchor)
		return nil, false
	}
	if anchor+x.layout.lastOffset() >= len(grid) {
		x.logger.Debug("Skipping truncated employee block", "row", anchor, "name", rawName)
		return nil, false
	}

	parts := strings.Split(rawName, x.layout.NameSeparator)
	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		x.logger.Debug("Skipping employee block with empty name", "row", anchor, "raw", rawName)
		return nil, false
	}

	statuses := grid.RowFrom(anchor+x.layout.StatusOffset, x.layout.DataStartColumn)
	timesIn := grid.RowFrom(anchor+x.layout.TimeInOffset, x.layout.DataStartColumn)
	timesOut := grid.RowFrom(anchor+x.layout.TimeOutOffset, x.layout.DataStartColumn)

	n := min(len(dayLabels), len(statuses), len(timesIn), len(timesOut))

	block := make([]attendance.Record, 0, n)
	for i := 0; i < n; i++ {
		block = append(block, attendance.Record{
			EmployeeName: name,
			DayLabel:     dayLabels[i],
			Status:       statuses[i],
			TimeIn:       clock.Parse(timesIn[i]),
			TimeOut:      clock.Parse(timesOut[i]),
		})
	}
	return block, true
}
