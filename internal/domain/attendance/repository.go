package attendance

import "context"

// RecordCache memoizes extraction results keyed by the exact grid content, so
// re-uploading an identical file skips parsing.
type RecordCache interface {
	// GetOrExtract returns cached records for grid or calls extract and stores its result
	GetOrExtract(ctx context.Context, grid RawGrid, extract func() ([]Record, error)) ([]Record, error)
}
