package main

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/nfrund/iconkit/internal/app"
	"github.com/nfrund/iconkit/internal/config"
	"github.com/nfrund/iconkit/internal/logging"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	injector := app.NewInjector(cfg, afero.NewOsFs())
	srv, err := app.Server(injector)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		injector.Shutdown()
		os.Exit(1)
	}
	injector.Shutdown()
}
