package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/psyclinic/internal/app"
	"github.com/nfrund/psyclinic/internal/config"
	"github.com/nfrund/psyclinic/internal/logging"
	"github.com/nfrund/psyclinic/internal/server"
)

// StaticDir can be set at build time to force the static asset source.
// Example: go build -ldflags "-X 'main.StaticDir=embed'"
var StaticDir string

func main() {
	if StaticDir != "" {
		os.Setenv("STATIC_DIR", StaticDir)
	}

	cfg := config.New()
	logging.New(cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := app.NewContainer(cfg)
	s := server.New(cfg, injector, app.NewModules())
	s.RegisterRoutes()

	if err := s.Boot(ctx); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	runErr := s.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Service shutdown failed", "error", err)
	}

	if runErr != nil {
		slog.Error("Server stopped with error", "error", runErr)
		os.Exit(1)
	}
}
