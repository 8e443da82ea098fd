package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkguid"
)

func (a *App) initConfig(path string) error {
	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	pkglog.InitLogging(os.Stderr, pkglog.ParseLevel(cfg.GetString("log.level")))

	a.config = cfg
	return nil
}

func (a *App) initLibraries() error {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake(a.config.GetInt("snowflake.node"))
	if err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}
	a.snowflake = sf

	a.engine = engine.New(engine.Config{
		MaxWorkers: int(a.config.GetInt("engine.max_workers")),
		BufferSize: int(a.config.GetInt("engine.buffer_size")),
	})

	return nil
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
