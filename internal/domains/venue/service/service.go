package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/venue/model"
	"bestevents/internal/domains/venue/model/dto"
	"bestevents/internal/domains/venue/repository"
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

type Venue interface {
	Create(ctx context.Context, req dto.CreateVenueRequest) (dto.VenueResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetVenuesResponse, error)
	Get(ctx context.Context, id int) (dto.VenueResponse, error)
	Update(ctx context.Context, req dto.UpdateVenueRequest, id int) (dto.VenueResponse, error)
	Delete(ctx context.Context, id int) error
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Venue
	otel otel.Otel
}

func New(repo repository.Venue, otel otel.Otel) Venue {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, venue, err := s.repo.Insert(ctx, func(key int) model.Venue {
		return req.ToModel(key, now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create venue")

		return res, fmt.Errorf("failed to create venue: %w", err)
	}

	res.FromModel(venue)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	venues := make([]model.Venue, len(entries))
	for i, entry := range entries {
		venues[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(venues, params), len(venues), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	venue, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	res.FromModel(venue)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVenueRequest, id int) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	venue, err := s.repo.Update(ctx, id, func(venue *model.Venue) error {
		return req.Apply(venue, now)
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update venue")

		return res, fmt.Errorf("failed to update venue: %w", err)
	}

	res.FromModel(venue)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete venue")

		return fmt.Errorf("failed to delete venue: %w", err)
	}

	return nil
}

func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Venue.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Venues", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
