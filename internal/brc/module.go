package brc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/brc/event"
	"github.com/shandysiswandi/gobrc/internal/brc/inbound"
	"github.com/shandysiswandi/gobrc/internal/brc/store"
	"github.com/shandysiswandi/gobrc/internal/brc/usecase"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.NumberID
	Engine    *engine.Engine
}

// New wires the job service onto the router and starts its event consumer.
// The returned closer drains the consumer.
func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Config == nil || dep.Router == nil || dep.Goroutine == nil || dep.Engine == nil || dep.ID == nil {
		return nil, errors.New("brc: missing dependency")
	}

	var (
		handler event.Handler = event.NoopHandler{}
		archive *event.FileArchiver
	)
	if dep.Config.GetBool("modules.brc.archive.enabled") {
		a, err := event.NewFileArchiver(
			dep.Config.GetString("modules.brc.archive.dir"),
			dep.Config.GetBool("modules.brc.archive.compress"),
		)
		if err != nil {
			return nil, fmt.Errorf("brc: init archiver: %w", err)
		}
		handler = a
		archive = a
	}

	storage := store.NewInMemoryStore()
	bus := event.NewBus(512)
	consumer := event.NewConsumer(bus, handler, event.ConsumerConfig{
		Workers:     int(dep.Config.GetInt("modules.brc.consumer.workers")),
		MaxRetries:  int(dep.Config.GetInt("modules.brc.consumer.max_retries")),
		BaseBackoff: time.Duration(dep.Config.GetInt("modules.brc.consumer.base_backoff_ms")) * time.Millisecond,
	})
	consumer.Start()

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Engine:  dep.Engine,
		Events:  bus,
		Runner:  dep.Goroutine,
		ID:      dep.ID,
		RootCtx: dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return func(ctx context.Context) error {
		err := consumer.Stop(ctx)
		if archive != nil {
			err = errors.Join(err, archive.Close())
		}
		return err
	}, nil
}
