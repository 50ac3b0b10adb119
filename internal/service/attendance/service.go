package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
)

// GridReader turns an uploaded export into raw rows of cells.
type GridReader interface {
	Read(r io.Reader, filename string) ([][]string, error)
}

type AttendanceServiceImpl struct {
	reader    GridReader
	cache     attendance.RecordCache
	extractor *Extractor
	engine    *RuleEngine
	maxUpload int64
	logger    *slog.Logger
}

// NewAttendanceService wires the read, extract and classify stages. cache may
// be nil to parse every upload from scratch.
func NewAttendanceService(
	reader GridReader,
	cache attendance.RecordCache,
	extractor *Extractor,
	engine *RuleEngine,
	maxUpload int64,
	logger *slog.Logger,
) attendance.AttendanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceServiceImpl{
		reader:    reader,
		cache:     cache,
		extractor: extractor,
		engine:    engine,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// ExtractRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExtractRecords(ctx context.Context, grid attendance.RawGrid) ([]attendance.Record, error) {
	if s.cache == nil {
		return s.extractor.Extract(grid)
	}

	records, err := s.cache.GetOrExtract(ctx, grid, func() ([]attendance.Record, error) {
		return s.extractor.Extract(grid)
	})
	if err != nil {
		return []attendance.Record{}, err
	}
	// Cached slices are shared between requests.
	return slices.Clone(records), nil
}

// LoadRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) LoadRecords(ctx context.Context, req attendance.UploadRequest) ([]attendance.ClassifiedRecord, error) {
	if req.MaxSize == 0 {
		req.MaxSize = s.maxUpload
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reader.Read(req.File, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance file %q: %w", req.Filename, err)
	}

	records, err := s.ExtractRecords(ctx, attendance.RawGrid(rows))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, attendance.ErrNoAttendanceData
	}

	classified := s.engine.ClassifyAll(records)
	s.logger.Info("Attendance file processed",
		"file", req.Filename,
		"rows", len(rows),
		"records", len(classified),
	)
	return classified, nil
}

// Policy implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Policy() attendance.ShiftPolicy {
	return s.engine.Policy()
}
