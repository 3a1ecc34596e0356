package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/assessment"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/config"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/metrics"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	limiter    *RateLimiter
	collector  *metrics.Collector
	config     *config.Config
	logger     *logger.Logger
}

// NewRouter creates a new API router. collector may be nil, which also
// disables the metrics endpoint.
func NewRouter(service *assessment.Service, cfg *config.Config, collector *metrics.Collector, log *logger.Logger) (*Router, error) {
	schemas, err := NewSchemaSet()
	if err != nil {
		return nil, fmt.Errorf("payload schemas: %w", err)
	}

	r := &Router{
		handler:    NewHandler(service, schemas, cfg, log),
		middleware: NewMiddleware(log, collector),
		collector:  collector,
		config:     cfg,
		logger:     log.Named("api-router"),
	}
	if cfg.Server.RateLimitRPS > 0 {
		r.limiter = NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}
	return r, nil
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.Metrics)
	router.Use(r.middleware.CORS(r.config.Server.CORSAllowedOrigins))

	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeErrorResponse(w, req, http.StatusNotFound, ErrorResponse{Type: ErrorTypeBadRequest, Message: "no such endpoint"})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeErrorResponse(w, req, http.StatusMethodNotAllowed, ErrorResponse{Type: ErrorTypeBadRequest, Message: "method not allowed"})
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Get("/health", r.handler.GetHealth)
		router.Get("/versions", r.handler.GetVersions)

		// Calculations
		router.Group(func(router chi.Router) {
			if r.limiter != nil {
				router.Use(r.limiter.Middleware)
			}
			router.Use(r.middleware.MaxBody(r.config.Server.MaxBodyBytes))

			router.Post("/grc", r.handler.PostGRC)
			router.Post("/arc", r.handler.PostARC)
			router.Post("/sail", r.handler.PostSAIL)
			router.Post("/assessment", r.handler.PostAssessment)
		})
	})

	if r.collector != nil && r.config.Metrics.Enabled {
		router.Method(http.MethodGet, r.config.Metrics.Path, r.collector.Handler())
	}

	return router
}
