package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/guest/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Guest interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Guest) (int, model.Guest, error)
	Add(ctx context.Context, key int, guest model.Guest) error
	Get(ctx context.Context, key int) (model.Guest, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Guest]
	Update(ctx context.Context, key int, mutate func(guest *model.Guest) error) (model.Guest, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Guest]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Guest, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Guests,
		persistence.NewAdapter[model.Guest](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
