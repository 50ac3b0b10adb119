package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

// GridCache memoizes extracted records by grid content. Concurrent misses for
// the same grid share one extraction.
type GridCache struct {
	mu    sync.Mutex
	lru   *lru.Cache
	group singleflight.Group
}

// NewGridCache returns a cache holding at most entries grids.
func NewGridCache(entries int) *GridCache {
	return &GridCache{lru: lru.New(entries)}
}

// GetOrExtract implements attendance.RecordCache. Failed extractions are not stored.
func (c *GridCache) GetOrExtract(ctx context.Context, grid attendance.RawGrid, extract func() ([]attendance.Record, error)) ([]attendance.Record, error) {
	key := Fingerprint(grid)

	if records, ok := c.get(key); ok {
		slog.DebugContext(ctx, "Grid cache hit", "key", key[:12])
		return records, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if records, ok := c.get(key); ok {
			return records, nil
		}
		records, err := extract()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.lru.Add(key, records)
		c.mu.Unlock()
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]attendance.Record), nil
}

// Len returns the number of cached grids.
func (c *GridCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *GridCache) get(key string) ([]attendance.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]attendance.Record), true
}

// Fingerprint hashes the exact cell content and shape of grid. Every cell is
// length-prefixed so ["ab","c"] and ["a","bc"] differ.
func Fingerprint(grid attendance.RawGrid) string {
	h := sha256.New()
	writeLen(h, len(grid))
	for _, row := range grid {
		writeLen(h, len(row))
		for _, cell := range row {
			writeLen(h, len(cell))
			h.Write([]byte(cell))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeLen(h hash.Hash, n int) {
	var buf [binary.MaxVarintLen64]byte
	h.Write(buf[:binary.PutUvarint(buf[:], uint64(n))])
}
