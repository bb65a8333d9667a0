package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/event/model"
	"bestevents/internal/domains/event/model/dto"
	"bestevents/internal/domains/event/repository"
	"bestevents/shared/constant"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	"bestevents/shared/tabular"
	"bestevents/shared/timezone"
	"bestevents/shared/validator"
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id int) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id int) (dto.EventResponse, error)
	Delete(ctx context.Context, id int) error
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Event
	otel otel.Otel
}

func New(repo repository.Event, otel otel.Otel) Event {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func defaultInvoice() int {
	return model.InvoiceMin + rand.IntN(model.InvoiceMax-model.InvoiceMin+1) //nolint:gosec
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, event, err := s.repo.Insert(ctx, func(key int) model.Event {
		return req.ToModel(key, defaultInvoice(), now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	events := make([]model.Event, len(entries))
	for i, entry := range entries {
		events[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(events, params), len(events), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id int) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	event, err := s.repo.Update(ctx, id, func(event *model.Event) error {
		req.Apply(event, now)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update event")

		return res, fmt.Errorf("failed to update event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get event: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Events", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
