package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/guest/model"
	"bestevents/internal/domains/guest/model/dto"
	"bestevents/internal/domains/guest/repository"
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

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id int) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int) (dto.GuestResponse, error)
	Delete(ctx context.Context, id int) error
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, guest, err := s.repo.Insert(ctx, func(key int) model.Guest {
		return req.ToModel(key, now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	guests := make([]model.Guest, len(entries))
	for i, entry := range entries {
		guests[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(guests, params), len(guests), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	guest, err := s.repo.Update(ctx, id, func(guest *model.Guest) error {
		req.Apply(guest, now)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	return nil
}

func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Guest.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Guests", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
