//go:build wireinject
// +build wireinject

package di

import (
	"bestevents/config"
	"bestevents/infras/storage"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	"bestevents/transport/cli"
	"bestevents/transport/http"
	"bestevents/transport/http/middleware"
	"bestevents/transport/http/router"
	"context"

	"github.com/google/wire"

	clientRepository "bestevents/internal/domains/client/repository"
	clientService "bestevents/internal/domains/client/service"
	employeeRepository "bestevents/internal/domains/employee/repository"
	employeeService "bestevents/internal/domains/employee/service"
	eventRepository "bestevents/internal/domains/event/repository"
	eventService "bestevents/internal/domains/event/service"
	guestRepository "bestevents/internal/domains/guest/repository"
	guestService "bestevents/internal/domains/guest/service"
	supplierRepository "bestevents/internal/domains/supplier/repository"
	supplierService "bestevents/internal/domains/supplier/service"
	venueRepository "bestevents/internal/domains/venue/repository"
	venueService "bestevents/internal/domains/venue/service"

	clientHandler "bestevents/internal/handlers/client"
	employeeHandler "bestevents/internal/handlers/employee"
	eventHandler "bestevents/internal/handlers/event"
	guestHandler "bestevents/internal/handlers/guest"
	supplierHandler "bestevents/internal/handlers/supplier"
	venueHandler "bestevents/internal/handlers/venue"
)

var infrastructures = wire.NewSet(
	provideOtel,
	storage.New,
)

var sharedHelpers = wire.NewSet(
	metrics.NewRegistry,
	metrics.New,
	persistence.CodecFor,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var domains = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
	clientRepository.New,
	clientService.New,
	eventRepository.New,
	eventService.New,
	supplierRepository.New,
	supplierService.New,
	guestRepository.New,
	guestService.New,
	venueRepository.New,
	venueService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	employeeHandler.New,
	clientHandler.New,
	eventHandler.New,
	supplierHandler.New,
	guestHandler.New,
	venueHandler.New,
	router.New,
)

func InitializeService(ctx context.Context, cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		infrastructures,
		sharedHelpers,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}

func InitializeApp(ctx context.Context, cfg *config.Config) (*cli.App, func(), error) {
	wire.Build(
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(cli.Services), "*"),
		cli.New,
	)

	return &cli.App{}, nil, nil
}
