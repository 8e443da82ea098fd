package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.JobEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// Consumer drains the bus with a fixed set of workers. Each event id is
// handled at most once; failed attempts are retried with doubling backoff.
type Consumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *Consumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &Consumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (c *Consumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for in-flight events to drain.
func (c *Consumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Consumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *Consumer) processEvent(event entity.JobEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != "" {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate job event", "event_id", event.EventID, "job_id", event.JobID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to handle job event after retries", "event_id", event.EventID, "job_id", event.JobID, "error", err)
			return
		}

		sleepBackoff(backoff)
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
}

// NoopHandler only logs the event.
type NoopHandler struct{}

func (NoopHandler) Handle(ctx context.Context, event entity.JobEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	slog.Info("job finished", "event_id", event.EventID, "job_id", event.JobID, "status", event.Status)
	return nil
}
