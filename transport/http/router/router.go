package router

import (
	"bestevents/config"
	"bestevents/internal/handlers/client"
	"bestevents/internal/handlers/employee"
	"bestevents/internal/handlers/event"
	"bestevents/internal/handlers/guest"
	"bestevents/internal/handlers/supplier"
	"bestevents/internal/handlers/venue"
	"bestevents/transport/http/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthPath = "/healthz"

type DomainHandlers struct {
	Employee employee.Handler
	Client   client.Handler
	Event    event.Handler
	Supplier supplier.Handler
	Guest    guest.Handler
	Venue    venue.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
	Registry       *prometheus.Registry
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.Middleware.RequestID, r.Middleware.AccessLog, chiMiddleware.Recoverer, r.Middleware.Tracing)

	router.Get(healthPath, Health)

	if r.Config.Metrics.Enable && r.Registry != nil {
		router.Handle(r.Config.Metrics.Path, promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry}))
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Supplier.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Venue.Router(routerGroup)
	})
}

func (r *Router) corsOptions() cors.Options {
	corsConfig := r.Config.App.CORS

	options := cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	}

	if len(options.AllowedMethods) == 0 {
		options.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	}

	return options
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config, registry *prometheus.Registry) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         cfg,
		Registry:       registry,
	}
}
