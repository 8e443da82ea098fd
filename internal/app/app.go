package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config *pkgconfig.Viper

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager
	engine    *engine.Engine

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

// New loads configuration and builds the shared libraries. The HTTP server
// and modules are only initialized by Serve.
func New(ctx context.Context, configPath string) (*App, error) {
	ctx, cancel := context.WithCancel(ctx)
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	if err := app.initConfig(configPath); err != nil {
		cancel()
		return nil, err
	}
	if err := app.initLibraries(); err != nil {
		cancel()
		return nil, err
	}

	return app, nil
}

func (a *App) Config() *pkgconfig.Viper {
	return a.config
}

func (a *App) Engine() *engine.Engine {
	return a.engine
}
