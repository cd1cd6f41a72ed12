package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/handler"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/middleware"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/response"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
)

// Handlers groups the resource handlers mounted under /api/v1
type Handlers struct {
	Municipality *handler.MunicipalityHandler
	Profile      *handler.ProfileHandler
	PhoneType    *handler.PhoneTypeHandler
}

// Router holds HTTP handlers and router configuration
type Router struct {
	handlers Handlers
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	logger   *logger.Logger
	cfg      *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	handlers Handlers,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		handlers: handlers,
		metrics:  m,
		gatherer: gatherer,
		logger:   log,
		cfg:      cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Operator-ID", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Handle("/metrics", promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/municipalities", func(r chi.Router) {
			r.Post("/", rt.handlers.Municipality.Create)
			r.Get("/", rt.handlers.Municipality.List)
			r.Get("/{id}", rt.handlers.Municipality.GetByID)
			r.Put("/{id}", rt.handlers.Municipality.Update)
			r.Delete("/{id}", rt.handlers.Municipality.Delete)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", rt.handlers.Profile.Create)
			r.Get("/", rt.handlers.Profile.List)
			r.Get("/{id}", rt.handlers.Profile.GetByID)
			r.Put("/{id}", rt.handlers.Profile.Update)
			r.Delete("/{id}", rt.handlers.Profile.Delete)
		})

		r.Route("/phone-types", func(r chi.Router) {
			r.Post("/", rt.handlers.PhoneType.Create)
			r.Get("/", rt.handlers.PhoneType.List)
			r.Get("/{id}", rt.handlers.PhoneType.GetByID)
			r.Put("/{id}", rt.handlers.PhoneType.Update)
			r.Delete("/{id}", rt.handlers.PhoneType.Delete)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
