package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"github.com/shandysiswandi/gobrc/internal/brc/usecase"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]*jobRecord
}

type jobRecord struct {
	mu     sync.RWMutex
	meta   entity.JobMeta
	output string
	rows   []entity.StationRow
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		jobs: make(map[string]*jobRecord),
	}
}

func (s *InMemoryStore) CreateJob(ctx context.Context, meta entity.JobMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[meta.ID]; exists {
		return pkgerror.NewBusiness("job already exists", pkgerror.CodeConflict)
	}

	s.jobs[meta.ID] = &jobRecord{
		meta: meta,
	}

	return nil
}

func (s *InMemoryStore) UpdateMeta(ctx context.Context, jobID string, fn func(meta *entity.JobMeta)) error {
	rec, err := s.get(jobID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	fn(&rec.meta)

	return nil
}

// SaveReport stores the formatted output and the byte-ordered rows of a finished job.
func (s *InMemoryStore) SaveReport(ctx context.Context, jobID string, output string, rows []entity.StationRow) error {
	rec, err := s.get(jobID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.output = output
	rec.rows = rows

	return nil
}

func (s *InMemoryStore) GetJob(ctx context.Context, jobID string) (entity.JobMeta, string, error) {
	rec, err := s.get(jobID)
	if err != nil {
		return entity.JobMeta{}, "", err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.meta, rec.output, nil
}

func (s *InMemoryStore) ListStations(ctx context.Context, jobID string, filter usecase.StationFilter, page, pageSize int) ([]entity.StationRow, int, entity.JobMeta, error) {
	rec, err := s.get(jobID)
	if err != nil {
		return nil, 0, entity.JobMeta{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	total := 0
	start := (page - 1) * pageSize
	end := start + pageSize
	items := make([]entity.StationRow, 0, pageSize)

	for _, row := range rec.rows {
		if !filter.Matches(row.Name) {
			continue
		}

		if total >= start && total < end {
			items = append(items, row)
		}
		total++
	}

	return items, total, rec.meta, nil
}

func (s *InMemoryStore) get(jobID string) (*jobRecord, error) {
	s.mu.RLock()
	rec, ok := s.jobs[jobID]
	s.mu.RUnlock()
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return rec, nil
}
