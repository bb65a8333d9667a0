package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/client/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Client interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Client) (int, model.Client, error)
	Add(ctx context.Context, key int, client model.Client) error
	Get(ctx context.Context, key int) (model.Client, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Client]
	Update(ctx context.Context, key int, mutate func(client *model.Client) error) (model.Client, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Client]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Client, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Clients,
		persistence.NewAdapter[model.Client](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
