package inbound

import (
	"context"

	"github.com/shandysiswandi/gobrc/internal/brc/usecase"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (usecase.SubmitResult, error)
	Job(ctx context.Context, jobID string) (usecase.JobResult, error)
	Stations(ctx context.Context, jobID string, filter usecase.StationFilter, page, pageSize int) (usecase.StationsResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/jobs", end.Submit)

	r.GET("/jobs/:id", end.Job)
	r.GET("/jobs/:id/stations", end.Stations) // ?prefix=&page=&page_size=
}
