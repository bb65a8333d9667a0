package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bestevents/config"
	"bestevents/infras/otel"
	"bestevents/infras/storage"
	"bestevents/internal/domains/employee/model"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	gRepo "bestevents/shared/repository"
	"context"
)

type Employee interface {
	NextKey() int
	Insert(ctx context.Context, build func(key int) model.Employee) (int, model.Employee, error)
	Add(ctx context.Context, key int, employee model.Employee) error
	Get(ctx context.Context, key int) (model.Employee, error)
	ListAll(ctx context.Context) []gRepo.Entry[model.Employee]
	Update(ctx context.Context, key int, mutate func(employee *model.Employee) error) (model.Employee, error)
	Remove(ctx context.Context, key int) error
	Exists(key int) bool
	Count() int
}

type repositoryImpl struct {
	*gRepo.Collection[model.Employee]
}

func New(ctx context.Context, cfg *config.Config, backend storage.Backend, codec persistence.Codec, otel otel.Otel, m *metrics.Metrics) (Employee, error) {
	collection, err := gRepo.NewCollection(
		ctx,
		model.EntityName,
		cfg.Storage.Collections.Employees,
		persistence.NewAdapter[model.Employee](backend, codec),
		otel,
		m,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &repositoryImpl{Collection: collection}, nil
}
