package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/client/model"
	"bestevents/internal/domains/client/model/dto"
	"bestevents/internal/domains/client/repository"
	"bestevents/shared/constant"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	"bestevents/shared/tabular"
	"bestevents/shared/timezone"
	"bestevents/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (dto.ClientResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id int) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id int) (dto.ClientResponse, error)
	Delete(ctx context.Context, id int) error
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Client
	otel otel.Otel
}

func New(repo repository.Client, otel otel.Otel) Client {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, client, err := s.repo.Insert(ctx, func(key int) model.Client {
		return req.ToModel(key, now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create client booking")

		return res, fmt.Errorf("failed to create client booking: %w", err)
	}

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	clients := make([]model.Client, len(entries))
	for i, entry := range entries {
		clients[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(clients, params), len(clients), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get client booking: %w", err)
	}

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id int) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	client, err := s.repo.Update(ctx, id, func(client *model.Client) error {
		req.Apply(client, now)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update client booking")

		return res, fmt.Errorf("failed to update client booking: %w", err)
	}

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete client booking")

		return fmt.Errorf("failed to delete client booking: %w", err)
	}

	return nil
}

// Describe renders a single record the way the data-entry screens show it.
func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get client booking: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Client.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Clients", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
