package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/supplier/model"
	"bestevents/internal/domains/supplier/model/dto"
	"bestevents/internal/domains/supplier/repository"
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

type Supplier interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (dto.SupplierResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetSuppliersResponse, error)
	Get(ctx context.Context, id int) (dto.SupplierResponse, error)
	Update(ctx context.Context, req dto.UpdateSupplierRequest, id int) (dto.SupplierResponse, error)
	Delete(ctx context.Context, id int) error
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Supplier
	otel otel.Otel
}

func New(repo repository.Supplier, otel otel.Otel) Supplier {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSupplierRequest) (res dto.SupplierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, supplier, err := s.repo.Insert(ctx, func(key int) model.Supplier {
		return req.ToModel(key, now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create supplier")

		return res, fmt.Errorf("failed to create supplier: %w", err)
	}

	res.FromModel(supplier)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetSuppliersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	suppliers := make([]model.Supplier, len(entries))
	for i, entry := range entries {
		suppliers[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(suppliers, params), len(suppliers), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.SupplierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get supplier: %w", err)
	}

	res.FromModel(supplier)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSupplierRequest, id int) (res dto.SupplierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	supplier, err := s.repo.Update(ctx, id, func(supplier *model.Supplier) error {
		req.Apply(supplier, now)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update supplier")

		return res, fmt.Errorf("failed to update supplier: %w", err)
	}

	res.FromModel(supplier)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete supplier")

		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	return nil
}

func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get supplier: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Supplier.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Suppliers", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
