// Package server assembles the Manyas web frontend: the UI routes, the
// shared middleware stack, and the operational endpoints.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/config"
	"github.com/me/manyas/internal/store"
	"github.com/me/manyas/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by /healthz.
const Version = "0.1.0"

// Server is the Manyas web server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	store     store.Store
	registry  *prometheus.Registry
	metrics   *httpMetrics
	limiter   *ipLimiter // nil when auth throttling is disabled
	ui        *ui.UI
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithRegistry sets the Prometheus registry served on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// New creates a new Server with all routes registered. api is the
// credential-less upstream client; the UI binds it per request.
func New(cfg config.ServerConfig, st store.Store, api *apiclient.Client, logger *slog.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		store:     st,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	s.metrics = newHTTPMetrics()
	if err := s.metrics.register(s.registry); err != nil {
		return nil, err
	}
	for _, c := range apiclient.Collectors() {
		if err := s.registry.Register(c); err != nil {
			return nil, err
		}
	}

	if cfg.LoginRate > 0 {
		s.limiter = newIPLimiter(cfg.LoginRate/60, cfg.LoginBurst)
	}

	u, err := ui.New(api, st, logger, ui.Config{
		Secure:        cfg.SecureCookies,
		CredentialTTL: cfg.CredentialTTL,
	})
	if err != nil {
		return nil, err
	}
	s.ui = u

	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(s.metrics.instrument)

	// Operational endpoints
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Static files (CSS)
	r.Handle("/static/*", ui.StaticHandler())

	// UI routes (HTML)
	var authLimit func(http.Handler) http.Handler
	if s.limiter != nil {
		authLimit = s.limiter.middleware(s.logger)
	}
	s.ui.RegisterRoutes(r, authLimit)
}
