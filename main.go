package main

import (
	"context"
	"os"

	"github.com/shandysiswandi/gobrc/internal/app"
)

func main() {
	if err := app.NewCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
