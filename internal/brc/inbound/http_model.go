package inbound

import (
	"net/http"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

type SubmitRequest struct {
	Path    string `json:"path"`
	Workers int    `json:"workers"`
}

type SubmitResponse struct {
	JobID   string `json:"job_id"`
	Workers int    `json:"workers"`
}

func (SubmitResponse) StatusCode() int {
	return http.StatusAccepted
}

func (SubmitResponse) Message() string {
	return "job accepted"
}

type JobResponse struct {
	JobID     string           `json:"job_id"`
	Path      string           `json:"path"`
	Status    entity.JobStatus `json:"status"`
	Workers   int              `json:"workers"`
	Error     string           `json:"error,omitempty"`
	StartedAt int64            `json:"started_at"`
	EndedAt   int64            `json:"ended_at"`
	Lines     int64            `json:"lines"`
	Bytes     int64            `json:"bytes"`
	Stations  int              `json:"stations"`
	Output    string           `json:"output,omitempty"`
}

// Station values are rendered exactly as in the report line.
type Station struct {
	Name  string `json:"name"`
	Min   string `json:"min"`
	Mean  string `json:"mean"`
	Max   string `json:"max"`
	Count int64  `json:"count"`
}

type StationsResponse struct {
	JobID    string           `json:"job_id"`
	Status   entity.JobStatus `json:"status"`
	Stations []Station        `json:"stations"`
	page     int
	pageSize int
	total    int
}

func (r StationsResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}
