//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Start initializes and starts the HTTP server with the given configuration, shutting it down when ctx is cancelled
func Start(ctx context.Context, cfg Config) error {
	s := &Server{
		status: cfg.Status,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.HealthHandler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down HTTP server", "err", err)
		}
	}()

	slog.Info("HTTP server listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
