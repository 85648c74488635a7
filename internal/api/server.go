// Package api provides the HTTP API server and handlers for CampFinder.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campfinder/campfinder-server/internal/catalog"
	"github.com/campfinder/campfinder-server/internal/http/response"
	"github.com/campfinder/campfinder-server/internal/ratelimit"
	"github.com/campfinder/campfinder-server/internal/store"
)

// Options tunes the middleware stack.
type Options struct {
	AllowedOrigins []string
	RateLimiter    *ratelimit.KeyedRateLimiter // nil disables rate limiting
	Metrics        bool                        // serve /metrics and record request metrics
	Version        string
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    store.Store
	catalog  *catalog.Source
	services *Services
	router   *chi.Mux
	api      huma.API
	opts     Options
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st store.Store, cat *catalog.Source, services *Services, opts Options, logger *slog.Logger) *Server {
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}

	s := &Server{
		store:    st,
		catalog:  cat,
		services: services,
		router:   chi.NewRouter(),
		opts:     opts,
		logger:   logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("CampFinder API", opts.Version)
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the huma API, for tests and OpenAPI export.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.RequestLogger(requestLogger{logger: s.logger}))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if s.opts.Metrics {
		s.router.Use(MetricsMiddleware)
	}
	if s.opts.RateLimiter != nil {
		s.router.Use(RateLimitMiddleware(s.opts.RateLimiter, s.logger))
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "no route for "+r.URL.Path, s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method+" is not allowed on "+r.URL.Path, s.logger)
	})
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	if s.opts.Metrics {
		s.router.Handle("/metrics", promhttp.Handler())
	}

	s.registerHealthRoutes()
	s.registerCatalogRoutes()
	s.registerHouseholdRoutes()
	s.registerScheduleRoutes()
	s.registerBrowseRoutes()
}
