// Package http exposes the dashboard routes. Every view handler runs the same
// synchronous per-request flow: load and sample the source files, normalize
// fields, aggregate, and render a chart specification. Requests share no
// state; a failed load surfaces as a server error with no partial results.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Meghaaa003/ADAS/internal/dataset"
	"github.com/Meghaaa003/ADAS/internal/observability"
	"github.com/Meghaaa003/ADAS/web"
)

// DatasetProvider loads the per-request dataset and reports source readiness.
type DatasetProvider interface {
	Load() (*dataset.Dataset, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard, data, health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	loader     DatasetProvider
	logger     *slog.Logger
	metrics    *observability.Metrics
	templates  *template.Template
}

// NewServer creates the dashboard HTTP server with all routes registered.
func NewServer(addr string, loader DatasetProvider, logger *slog.Logger, metrics *observability.Metrics) (*Server, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		loader:    loader,
		logger:    logger,
		metrics:   metrics,
		templates: templates,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.instrument("home", s.handleHome))
	r.Get("/spatial-analysis", s.instrument("spatial_analysis", s.handleSpatialAnalysis))
	r.Get("/alert-frequency", s.instrument("alert_frequency", s.handleAlertFrequency))
	r.Get("/speed-analysis", s.instrument("speed_analysis", s.handleSpeedAnalysis))
	r.Get("/correlation-analysis", s.instrument("correlation_analysis", s.handleCorrelationAnalysis))
	r.Get("/driver-behavior", s.instrument("driver_behavior", s.handleDriverBehavior))
	r.Get("/safety-impact", s.instrument("safety_impact", s.handleSafetyImpact))
	r.Get("/safety_analysis", s.instrument("safety_analysis", s.handleSafetyAnalysis))
	r.Get("/data/coordinates", s.instrument("data_coordinates", s.handleCoordinates))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(loader))
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// instrument wraps a handler with per-route request counting and timing.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
