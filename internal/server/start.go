package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within timeout.
func (s *Server) Run(ctx context.Context, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Start runs the server on the configured address until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signalContext()
	defer stop()
	return s.Run(ctx, s.Cfg.GetAddr(), s.Cfg.GetShutdownTimeout())
}
