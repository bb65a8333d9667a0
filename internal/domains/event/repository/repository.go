package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/event/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Event interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Event) (int, model.Event, error)
	Add(ctx context.Context, key int, event model.Event) error
	Get(ctx context.Context, key int) (model.Event, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Event]
	Update(ctx context.Context, key int, mutate func(event *model.Event) error) (model.Event, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Event]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Event, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Events,
		persistence.NewAdapter[model.Event](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
