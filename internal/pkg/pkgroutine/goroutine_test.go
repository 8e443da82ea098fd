package pkgroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestNewManagerDefaultMax(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("expected cap %d, got %d", DefaultMaxGoroutine, got)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errOne
	})
	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errTwo
	})

	joined := mgr.Wait()
	if !errors.Is(joined, errOne) || !errors.Is(joined, errTwo) {
		t.Fatalf("expected both errors, got %v", joined)
	}
}

func TestManagerTurnsPanicIntoError(t *testing.T) {
	mgr := NewManager(1)
	mgr.Go(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})

	err := mgr.Wait()
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}
}

func TestManagerRunsEveryTask(t *testing.T) {
	mgr := NewManager(3)
	var ran int32

	for i := 0; i < 20; i++ {
		mgr.Go(context.Background(), func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran != 20 {
		t.Fatalf("expected 20 runs, got %d", ran)
	}
}

func TestManagerCanceledBeforeStart(t *testing.T) {
	mgr := NewManager(1)
	release := make(chan struct{})

	mgr.Go(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mgr.Go(ctx, func(ctx context.Context) error {
		t.Error("task must not run after cancellation")
		return nil
	})
	close(release)

	if err := mgr.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
