package engine

import (
	"runtime"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

// DefaultMaxWorkers caps the worker pool when no limit is configured.
const DefaultMaxWorkers = 11

// Workers returns min(runtime.NumCPU(), limit). A non-positive limit means
// DefaultMaxWorkers.
func Workers(limit int) int {
	if limit < 1 {
		limit = DefaultMaxWorkers
	}
	return max(1, min(runtime.NumCPU(), limit))
}

// PlanChunks splits [0, size) into workers contiguous ranges of size/workers
// bytes; the last range absorbs the remainder.
//
// Ranges are never empty: a file smaller than the worker count gets one
// chunk per byte, and an empty file gets none.
func PlanChunks(size int64, workers int) []entity.Chunk {
	if size <= 0 {
		return nil
	}

	n := int64(max(1, workers))
	if n > size {
		n = size
	}

	chunkSize := size / n
	chunks := make([]entity.Chunk, n)

	for i := int64(0); i < n; i++ {
		chunks[i] = entity.Chunk{Start: i * chunkSize, End: (i + 1) * chunkSize}
	}
	chunks[n-1].End = size

	return chunks
}
