package service

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/employee/model"
	"bestevents/internal/domains/employee/model/dto"
	"bestevents/internal/domains/employee/repository"
	"bestevents/shared/constant"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	"bestevents/shared/tabular"
	"bestevents/shared/timezone"
	"bestevents/shared/validator"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog/log"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id int) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id int) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
	AddSubordinate(ctx context.Context, managerID, employeeID int) (dto.EmployeeResponse, error)
	RemoveSubordinate(ctx context.Context, managerID, employeeID int) (dto.EmployeeResponse, error)
	Describe(ctx context.Context, id int) (string, error)
	Table(ctx context.Context) tabular.Table
}

type serviceImpl struct {
	repo repository.Employee
	otel otel.Otel
}

func New(repo repository.Employee, otel otel.Otel) Employee {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func defaultSalary() int {
	return model.SalaryMin + rand.IntN(model.SalaryMax-model.SalaryMin+1) //nolint:gosec
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	_, employee, err := s.repo.Insert(ctx, func(key int) model.Employee {
		return req.ToModel(key, defaultSalary(), now)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.GetAll")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	employees := make([]model.Employee, len(entries))
	for i, entry := range entries {
		employees[i] = entry.Record
	}

	res.FromModels(gDto.Paginate(employees, params), len(employees), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id int) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	employee, err := s.repo.Update(ctx, id, func(employee *model.Employee) error {
		if req.JobTitle != nil && !req.JobTitle.IsManagerial() && len(employee.Subordinates) > 0 {
			return failure.BadRequestFromString(fmt.Sprintf("employee %d still has subordinates and must keep a managerial title", id))
		}

		req.Apply(employee, now)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to update employee")

		return res, fmt.Errorf("failed to update employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Remove(ctx, id); err != nil {
		log.Error().Err(err).Int(constant.OtelKeyAttributeKey, id).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) AddSubordinate(ctx context.Context, managerID, employeeID int) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.AddSubordinate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if managerID == employeeID {
		return res, failure.BadRequestFromString("an employee cannot be their own subordinate")
	}

	if !s.repo.Exists(employeeID) {
		return res, failure.NotFoundKey(model.EntityName, employeeID)
	}

	manager, err := s.repo.Update(ctx, managerID, func(manager *model.Employee) error {
		if !manager.IsManager() {
			return failure.BadRequestFromString(fmt.Sprintf("employee %d is a %s and cannot have subordinates", manager.ID, manager.JobTitle.Label()))
		}

		if manager.HasSubordinate(employeeID) {
			return nil
		}

		manager.Subordinates = append(slices.Clone(manager.Subordinates), employeeID)
		manager.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("manager_id", managerID).Int("employee_id", employeeID).Msg("failed to add subordinate")

		return res, fmt.Errorf("failed to add subordinate: %w", err)
	}

	res.FromModel(manager)

	return res, nil
}

func (s *serviceImpl) RemoveSubordinate(ctx context.Context, managerID, employeeID int) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.RemoveSubordinate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	manager, err := s.repo.Update(ctx, managerID, func(manager *model.Employee) error {
		if !manager.HasSubordinate(employeeID) {
			return failure.NotFound(fmt.Sprintf("employee %d is not a subordinate of employee %d", employeeID, managerID))
		}

		manager.Subordinates = slices.DeleteFunc(slices.Clone(manager.Subordinates), func(id int) bool { return id == employeeID })
		manager.Touch(timezone.Now())

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("manager_id", managerID).Int("employee_id", employeeID).Msg("failed to remove subordinate")

		return res, fmt.Errorf("failed to remove subordinate: %w", err)
	}

	res.FromModel(manager)

	return res, nil
}

// Describe renders a single record the way the data-entry screens show it.
func (s *serviceImpl) Describe(ctx context.Context, id int) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Describe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	return record.String(), nil
}

func (s *serviceImpl) Table(ctx context.Context) tabular.Table {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Employee.Table")
	defer scope.End()

	entries := s.repo.ListAll(ctx)

	table := tabular.Table{Title: "Employees", Columns: model.Columns, Rows: make([][]string, len(entries))}
	for i, entry := range entries {
		table.Rows[i] = entry.Record.Row()
	}

	return table
}
