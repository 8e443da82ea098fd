package usecase

import (
	"strings"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

type SubmitInput struct {
	Path    string
	Workers int
}

type SubmitResult struct {
	JobID   string
	Workers int
}

type JobResult struct {
	Meta   entity.JobMeta
	Output string
}

type StationsResult struct {
	JobID    string
	Status   entity.JobStatus
	Stations []entity.StationRow
	Page     int
	PageSize int
	Total    int
}

type StationFilter struct {
	Prefix string
}

func (f StationFilter) Matches(name string) bool {
	return strings.HasPrefix(name, f.Prefix)
}
