package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is cancelled, then shuts down the
// listener and every module.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the listener first, then the modules in reverse boot order.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	err := s.E.Shutdown(ctx)

	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if mErr := m.Shutdown(ctx); mErr != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", mErr)
			err = errors.Join(err, mErr)
		}
	}
	return err
}
