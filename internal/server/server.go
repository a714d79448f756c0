// Package server exposes preview selection and layout over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/menta2k/viewfinder/internal/config"
	"github.com/menta2k/viewfinder/pkg/display"
	"github.com/menta2k/viewfinder/pkg/framing"
	"github.com/menta2k/viewfinder/pkg/types"
)

const shutdownTimeout = 10 * time.Second

// Server holds the HTTP server state and dependencies.
type Server struct {
	cfg      *config.Config
	display  display.Configuration
	rotation int
	sizes    []types.Size
	framing  framing.Options

	router   *mux.Router
	metrics  *metrics
	gatherer prometheus.Gatherer
}

// New creates a server answering with cfg's display and camera unless a
// request overrides them. Metrics are registered with reg; a private
// registry is used when reg is nil.
func New(cfg *config.Config, reg *prometheus.Registry) (*Server, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	dc, err := cfg.DisplayConfiguration()
	if err != nil {
		return nil, fmt.Errorf("invalid display configuration: %w", err)
	}
	rotation, err := cfg.CameraRotation()
	if err != nil {
		return nil, fmt.Errorf("invalid camera configuration: %w", err)
	}
	sizes, err := cfg.PreviewSizes()
	if err != nil {
		return nil, fmt.Errorf("invalid preview sizes: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		display:  dc,
		rotation: rotation,
		sizes:    sizes,
		framing:  cfg.FramingOptions(),
		metrics:  newMetrics(reg),
		gatherer: reg,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware, s.observeMiddleware)

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/strategies", s.strategiesHandler).Methods(http.MethodGet)
	api.HandleFunc("/best", s.bestHandler).Methods(http.MethodPost)
	api.HandleFunc("/place", s.placeHandler).Methods(http.MethodPost)
	api.HandleFunc("/layout", s.layoutHandler).Methods(http.MethodPost)
	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting viewfinder server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("Context cancelled, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("Graceful shutdown completed")
	return nil
}
