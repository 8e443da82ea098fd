package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkguid"
)

type Store interface {
	CreateJob(ctx context.Context, meta entity.JobMeta) error
	UpdateMeta(ctx context.Context, jobID string, fn func(meta *entity.JobMeta)) error
	SaveReport(ctx context.Context, jobID string, output string, rows []entity.StationRow) error
	GetJob(ctx context.Context, jobID string) (entity.JobMeta, string, error)
	ListStations(ctx context.Context, jobID string, filter StationFilter, page, pageSize int) ([]entity.StationRow, int, entity.JobMeta, error)
}

type Aggregator interface {
	Aggregate(ctx context.Context, path string, workers int) (engine.Report, error)
	MaxWorkers() int
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.JobEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Engine  Aggregator
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.NumberID
	RootCtx context.Context
}

type Usecase struct {
	store   Store
	engine  Aggregator
	events  EventPublisher
	runner  Runner
	clock   Clock
	id      pkguid.NumberID
	rootCtx context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:   dep.Store,
		engine:  dep.Engine,
		events:  dep.Events,
		runner:  dep.Runner,
		clock:   clock,
		id:      dep.ID,
		rootCtx: root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if u.store == nil || u.engine == nil || u.id == nil || u.runner == nil {
		return SubmitResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	path := strings.TrimSpace(in.Path)
	if path == "" {
		return SubmitResult{}, pkgerror.NewInvalidInput(errors.New("path is required"))
	}

	if in.Workers < 0 {
		return SubmitResult{}, pkgerror.NewInvalidInput(errors.New("workers must not be negative"))
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return SubmitResult{}, pkgerror.NewInvalidInput(fmt.Errorf("input %s does not exist", path))
	}
	if err != nil {
		return SubmitResult{}, pkgerror.NewServer(err)
	}
	if !info.Mode().IsRegular() {
		return SubmitResult{}, pkgerror.NewInvalidInput(fmt.Errorf("input %s is not a regular file", path))
	}

	workers := in.Workers
	if limit := u.engine.MaxWorkers(); workers == 0 || workers > limit {
		workers = limit
	}

	jobID := u.id.GenerateString()
	if err := u.store.CreateJob(ctx, entity.JobMeta{
		ID:      jobID,
		Path:    path,
		Workers: workers,
		Status:  entity.JobStatusQueued,
	}); err != nil {
		return SubmitResult{}, pkgerror.Normalize(err)
	}

	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		ctx = pkglog.SetCorrelationID(ctx, jobID)
		if err := u.processJob(ctx, jobID, path, workers); err != nil {
			slog.ErrorContext(ctx, "aggregation job failed", "job_id", jobID, "error", err)
			return err
		}
		return nil
	})

	return SubmitResult{JobID: jobID, Workers: workers}, nil
}

func (u *Usecase) Job(ctx context.Context, jobID string) (JobResult, error) {
	if jobID == "" {
		return JobResult{}, pkgerror.NewInvalidInput(errors.New("job id is required"))
	}

	meta, output, err := u.store.GetJob(ctx, jobID)
	if err != nil {
		return JobResult{}, mapStoreErr(err)
	}

	return JobResult{Meta: meta, Output: output}, nil
}

func (u *Usecase) Stations(ctx context.Context, jobID string, filter StationFilter, page, pageSize int) (StationsResult, error) {
	if jobID == "" {
		return StationsResult{}, pkgerror.NewInvalidInput(errors.New("job id is required"))
	}

	if page < 1 || pageSize < 1 {
		return StationsResult{}, pkgerror.NewInvalidInput(errors.New("invalid pagination"))
	}

	rows, total, meta, err := u.store.ListStations(ctx, jobID, filter, page, pageSize)
	if err != nil {
		return StationsResult{}, mapStoreErr(err)
	}

	if meta.Status != entity.JobStatusDone {
		return StationsResult{}, pkgerror.NewBusiness(fmt.Sprintf("job is %s", strings.ToLower(string(meta.Status))), pkgerror.CodeNotReady)
	}

	return StationsResult{
		JobID:    jobID,
		Status:   meta.Status,
		Stations: rows,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (u *Usecase) processJob(ctx context.Context, jobID, path string, workers int) error {
	startedAt := u.clock.Now().Unix()
	if err := u.store.UpdateMeta(ctx, jobID, func(meta *entity.JobMeta) {
		meta.Status = entity.JobStatusProcessing
		meta.StartedAt = startedAt
	}); err != nil {
		return err
	}

	slog.InfoContext(ctx, "aggregation started", "job_id", jobID, "path", path, "workers", workers)

	report, err := u.engine.Aggregate(ctx, path, workers)

	endedAt := u.clock.Now().Unix()
	status := entity.JobStatusDone
	errMsg := ""
	output := ""
	if err != nil {
		status = entity.JobStatusFailed
		errMsg = err.Error()
	} else {
		output = report.String()
		if saveErr := u.store.SaveReport(ctx, jobID, output, report.Stations.Rows()); saveErr != nil {
			return saveErr
		}
	}

	if metaErr := u.store.UpdateMeta(ctx, jobID, func(meta *entity.JobMeta) {
		meta.Status = status
		meta.Err = errMsg
		meta.EndedAt = endedAt
		meta.Lines = report.Lines()
		meta.Bytes = report.Bytes
		meta.Stations = len(report.Stations)
		if report.Workers > 0 {
			meta.Workers = report.Workers
		}
	}); metaErr != nil {
		return metaErr
	}

	slog.InfoContext(ctx, "aggregation finished", "job_id", jobID, "status", status, "lines", report.Lines(), "elapsed", report.Elapsed.String())

	if u.events != nil {
		event := entity.JobEvent{
			EventID: u.id.GenerateString(),
			JobID:   jobID,
			Status:  status,
			Output:  output,
		}
		if pubErr := u.events.Publish(ctx, event); pubErr != nil {
			slog.WarnContext(ctx, "failed to publish job event", "job_id", jobID, "event_id", event.EventID, "error", pubErr)
		}
	}

	return err
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("job not found", pkgerror.CodeNotFound)
	}
	return pkgerror.Normalize(err)
}
