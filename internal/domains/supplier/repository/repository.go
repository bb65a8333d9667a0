package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/supplier/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Supplier interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Supplier) (int, model.Supplier, error)
	Add(ctx context.Context, key int, supplier model.Supplier) error
	Get(ctx context.Context, key int) (model.Supplier, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Supplier]
	Update(ctx context.Context, key int, mutate func(supplier *model.Supplier) error) (model.Supplier, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Supplier]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Supplier, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Suppliers,
		persistence.NewAdapter[model.Supplier](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
