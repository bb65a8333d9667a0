package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/venue/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Venue interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Venue) (int, model.Venue, error)
	Add(ctx context.Context, key int, venue model.Venue) error
	Get(ctx context.Context, key int) (model.Venue, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Venue]
	Update(ctx context.Context, key int, mutate func(venue *model.Venue) error) (model.Venue, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Venue]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Venue, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Venues,
		persistence.NewAdapter[model.Venue](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
