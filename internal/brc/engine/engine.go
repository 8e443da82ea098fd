package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgroutine"
)

type Config struct {
	// MaxWorkers caps the pool; the effective size is min(NumCPU, MaxWorkers).
	MaxWorkers int
	BufferSize int
}

// Engine runs chunked parallel aggregations over files on local disk.
type Engine struct {
	maxWorkers int
	bufferSize int
}

func New(cfg Config) *Engine {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}

	return &Engine{
		maxWorkers: Workers(cfg.MaxWorkers),
		bufferSize: cfg.BufferSize,
	}
}

// MaxWorkers returns the default pool size.
func (e *Engine) MaxWorkers() int {
	return e.maxWorkers
}

// Report is the outcome of one aggregation.
type Report struct {
	Stations Result
	Workers  int
	Bytes    int64
	Elapsed  time.Duration
}

// Lines returns the number of records aggregated.
func (r Report) Lines() int64 {
	return r.Stations.Lines()
}

// String returns the formatted summary line.
func (r Report) String() string {
	return Format(r.Stations)
}

// Aggregate computes per-station stats of the file at path with the given
// number of workers (MaxWorkers when workers < 1).
//
// The file is opened and sized before any worker starts. Each worker opens
// its own handle and fills its own table; the tables are merged after every
// worker has finished. Any worker error fails the whole run.
func (e *Engine) Aggregate(ctx context.Context, path string, workers int) (Report, error) {
	start := time.Now()
	if workers < 1 {
		workers = e.maxWorkers
	}

	size, err := fileSize(path)
	if err != nil {
		return Report{}, err
	}

	chunks := PlanChunks(size, workers)
	tables := make([]*Table, len(chunks))
	pool := pkgroutine.NewManager(len(chunks))

	for i, chunk := range chunks {
		pool.Go(ctx, func(ctx context.Context) error {
			table, err := e.scan(path, i, chunk)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "chunk aggregated", "chunk", i, "start", chunk.Start, "end", chunk.End, "stations", table.Len())
			tables[i] = table
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return Report{}, fmt.Errorf("aggregate %s: %w", path, err)
	}

	return Report{
		Stations: Merge(tables...),
		Workers:  len(chunks),
		Bytes:    size,
		Elapsed:  time.Since(start),
	}, nil
}

func (e *Engine) scan(path string, i int, chunk entity.Chunk) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chunk %d: %w", i, err)
	}
	defer f.Close()

	table, err := AggregateChunk(f, chunk, e.bufferSize)
	if err != nil {
		return nil, fmt.Errorf("chunk %d [%d, %d): %w", i, chunk.Start, chunk.End, err)
	}
	return table, nil
}

func fileSize(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("open input: %s is a directory", path)
	}

	return info.Size(), nil
}
