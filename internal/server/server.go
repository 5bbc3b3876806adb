// Package server wires the drive synchronization API: routing, middleware
// and the background drain of folder change notifications.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/drivesync/internal/config"
	"github.com/iudanet/drivesync/internal/drive"
	"github.com/iudanet/drivesync/internal/metrics"
	"github.com/iudanet/drivesync/internal/server/handlers"
	"github.com/iudanet/drivesync/internal/server/middleware"
)

// Пути API
const (
	PathSyncFolders = "/api/v1/sync/folders"
	PathSyncFiles   = "/api/v1/sync/files"
	PathFiles       = "/api/v1/files"
	PathHealth      = "/api/v1/health"
	PathMetrics     = "/metrics"
)

// Server is the HTTP API server.
type Server struct {
	logger  *slog.Logger
	events  *drive.EventBuffer
	limiter *middleware.RateLimiter
	handler http.Handler
	cfg     config.ServerConfig
	drain   time.Duration
}

// New creates the server. events may be nil, then no notifications are drained.
func New(cfg config.ServerConfig, drain time.Duration, service handlers.DriveService, db handlers.Pinger,
	events *drive.EventBuffer, logger *slog.Logger, version string) *Server {
	s := &Server{
		logger:  logger,
		events:  events,
		limiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger),
		cfg:     cfg,
		drain:   drain,
	}

	syncHandler := handlers.NewSyncHandler(logger, service)
	healthHandler := handlers.NewHealthHandler(logger, db, version)
	withSession := middleware.SessionMiddleware(logger)

	mux := http.NewServeMux()
	mux.Handle("POST "+PathSyncFolders, withSession(http.HandlerFunc(syncHandler.HandleFolders)))
	mux.Handle("POST "+PathSyncFiles, withSession(http.HandlerFunc(syncHandler.HandleFiles)))
	mux.Handle("PUT "+PathFiles, withSession(http.HandlerFunc(syncHandler.HandleUpload)))
	mux.HandleFunc("GET "+PathHealth, healthHandler.Health)
	mux.Handle("GET "+PathMetrics, promhttp.Handler())

	// Цепочка: recovery -> request id -> logging -> rate limit -> mux
	var h http.Handler = mux
	h = s.limiter.Middleware()(h)
	h = middleware.LoggingWithSkip(logger, []string{PathHealth, PathMetrics})(h)
	h = middleware.RequestIDMiddleware()(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	s.handler = h

	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within the
// configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	drainCtx, stopDrain := context.WithCancel(ctx)
	defer stopDrain()
	if s.events != nil {
		go s.events.Run(drainCtx, s.drain, s.notify)
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", "addr", ln.Addr().String())
		errC <- srv.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// notify обрабатывает консолидированное уведомление об изменении директорий
func (s *Server) notify(event drive.FolderEvent) {
	folders := 0
	for _, paths := range event.FoldersPerUser {
		folders += len(paths)
	}

	s.logger.Info("Folder change notification",
		"context_id", event.ContextID,
		"users", len(event.FoldersPerUser),
		"folders", folders)
	metrics.NotificationsAdd(1)
}
