// Package server exposes the pipeline validation API over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pipecheck/pipecheck/internal/metrics"
	"github.com/pipecheck/pipecheck/pkg/config"
)

const httpShutdownTimeout = 5 * time.Second

// Server wires the parse endpoint, health and metrics onto one HTTP listener.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Set
	started time.Time
}

// New builds a Server from loaded configuration.
func New(cfg *config.Config, log *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
		started: time.Now(),
	}
}

// Handler returns the fully assembled HTTP handler, exported so tests can
// drive it through httptest without a listener.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware, s.corsMiddleware, s.logMiddleware)

	r.HandleFunc("/pipelines/parse", s.handleParse).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests
// for up to httpShutdownTimeout.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("http server stopped")
	return nil
}
