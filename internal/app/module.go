package app

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/gobrc/internal/brc"
)

func (a *App) initModules() error {
	if a.config.GetBool("modules.brc.enabled") {
		closer, err := brc.New(brc.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.snowflake,
			Engine:    a.engine,
		})
		if err != nil {
			return fmt.Errorf("init module brc: %w", err)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["BRC"] = closer
		}
	}

	return nil
}
