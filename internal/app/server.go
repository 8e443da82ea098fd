package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the job service until SIGINT/SIGTERM or until the parent
// context is canceled.
func (a *App) Serve() error {
	a.initHTTPServer()
	if err := a.initModules(); err != nil {
		return err
	}
	a.initClosers()

	errCh := a.Start()

	sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
	case serveErr = <-errCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Stop(ctx)

	slog.Info("application gracefully shutdown")
	return serveErr
}

func (a *App) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
		}
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}
	slog.InfoContext(ctx, "all goroutines have finished successfully")

	for name, closer := range a.closerFn {
		if name == "HTTP Server" {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
