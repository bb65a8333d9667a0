package service_test

import (
	"bestevents/infras/otel/mocks"
	employeeMocks "bestevents/internal/domains/employee/mocks"
	"bestevents/internal/domains/employee/model"
	"bestevents/internal/domains/employee/model/dto"
	"bestevents/internal/domains/employee/service"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	gRepo "bestevents/shared/repository"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func titlePtr(t model.JobTitle) *model.JobTitle { return &t }

// applyUpdate mimics the repository: the mutation runs against a copy of stored.
func applyUpdate(stored model.Employee) func(context.Context, int, func(*model.Employee) error) (model.Employee, error) {
	return func(_ context.Context, _ int, mutate func(*model.Employee) error) (model.Employee, error) {
		if err := mutate(&stored); err != nil {
			return model.Employee{}, err
		}

		return stored, nil
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	insertAs := func(key int) func(context.Context, func(int) model.Employee) (int, model.Employee, error) {
		return func(_ context.Context, build func(int) model.Employee) (int, model.Employee, error) {
			return key, build(key), nil
		}
	}

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.EmployeeResponse)
	}{
		{
			name: "successful creation",
			req: dto.CreateEmployeeRequest{
				Name:       "Alice",
				Department: "Sales",
				JobTitle:   model.JobTitleSalesperson,
				Salary:     intPtr(50000),
			},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1))
			},
			check: func(t *testing.T, res dto.EmployeeResponse) {
				assert.Equal(t, 1, res.ID)
				assert.Equal(t, "Alice", res.Name)
				assert.Equal(t, "Salesperson", res.JobTitleLabel)
				assert.Equal(t, 50000, res.Salary)
				assert.NotEmpty(t, res.CreatedAt)
			},
		},
		{
			name: "salary defaults into range",
			req: dto.CreateEmployeeRequest{
				Name:       "Bob",
				Department: "Hospitality",
				JobTitle:   model.JobTitleHandyman,
			},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(2))
			},
			check: func(t *testing.T, res dto.EmployeeResponse) {
				assert.GreaterOrEqual(t, res.Salary, model.SalaryMin)
				assert.LessOrEqual(t, res.Salary, model.SalaryMax)
			},
		},
		{
			name:      "blank name",
			req:       dto.CreateEmployeeRequest{Name: " ", Department: "Sales", JobTitle: model.JobTitleMarketer},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "unknown job title",
			req:       dto.CreateEmployeeRequest{Name: "Carl", Department: "Sales", JobTitle: "Astronaut"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  dto.CreateEmployeeRequest{Name: "Dana", Department: "Sales", JobTitle: model.JobTitleAccountant},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, model.Employee{}, failure.Unavailable(errors.New("disk full")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	entries := []gRepo.Entry[model.Employee]{
		{Key: 1, Record: model.Employee{ID: 1, Name: "Alice"}},
		{Key: 2, Record: model.Employee{ID: 2, Name: "Bob"}},
		{Key: 3, Record: model.Employee{ID: 3, Name: "Carol"}},
	}

	mockRepo.EXPECT().ListAll(gomock.Any()).Return(entries).Times(2)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Employees, 1)
	assert.Equal(t, "Carol", res.Employees[0].Name)

	res, err = svc.GetAll(context.Background(), gDto.QueryParams{})
	require.NoError(t, err)
	assert.Len(t, res.Employees, 3)
}

func TestEmployeeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), 1).Return(model.Employee{ID: 1, Name: "Alice"}, nil)
	mockRepo.EXPECT().Get(gomock.Any(), 99).Return(model.Employee{}, failure.NotFoundKey(model.EntityName, 99))

	res, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)

	_, err = svc.Get(context.Background(), 99)
	assert.True(t, failure.IsNotFound(err))
}

func TestEmployeeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	alice := model.Employee{ID: 1, Name: "Alice", Department: "Sales", JobTitle: model.JobTitleSalesperson, Salary: 50000}
	manager := model.Employee{ID: 2, Name: "Mia", Department: "Sales", JobTitle: model.JobTitleSalesManager, Salary: 80000, Subordinates: []int{1}}

	tests := []struct {
		name      string
		id        int
		req       dto.UpdateEmployeeRequest
		setupMock func()
		wantErr   func(error) bool
		check     func(t *testing.T, res dto.EmployeeResponse)
	}{
		{
			name: "only the given field changes",
			id:   1,
			req:  dto.UpdateEmployeeRequest{Salary: intPtr(65000)},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(applyUpdate(alice))
			},
			check: func(t *testing.T, res dto.EmployeeResponse) {
				assert.Equal(t, 65000, res.Salary)
				assert.Equal(t, "Alice", res.Name)
				assert.Equal(t, "Sales", res.Department)
				assert.Equal(t, string(model.JobTitleSalesperson), res.JobTitle)
			},
		},
		{
			name:      "empty request",
			id:        1,
			req:       dto.UpdateEmployeeRequest{},
			setupMock: func() {},
			wantErr:   failure.IsValidation,
		},
		{
			name:      "blank department",
			id:        1,
			req:       dto.UpdateEmployeeRequest{Department: strPtr("")},
			setupMock: func() {},
			wantErr:   failure.IsValidation,
		},
		{
			name: "missing employee",
			id:   99,
			req:  dto.UpdateEmployeeRequest{Name: strPtr("Zed")},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(model.Employee{}, failure.NotFoundKey(model.EntityName, 99))
			},
			wantErr: failure.IsNotFound,
		},
		{
			name: "manager with subordinates keeps managerial title",
			id:   2,
			req:  dto.UpdateEmployeeRequest{JobTitle: titlePtr(model.JobTitleDesigner)},
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), 2, gomock.Any()).DoAndReturn(applyUpdate(manager))
			},
			wantErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestEmployeeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Remove(gomock.Any(), 1).Return(nil)
	mockRepo.EXPECT().Remove(gomock.Any(), 2).Return(failure.NotFoundKey(model.EntityName, 2))

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, failure.IsNotFound(svc.Delete(context.Background(), 2)))
}

func TestEmployeeService_AddSubordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	manager := model.Employee{ID: 2, Name: "Mia", JobTitle: model.JobTitleSalesManager}
	designer := model.Employee{ID: 3, Name: "Dee", JobTitle: model.JobTitleDesigner}

	tests := []struct {
		name       string
		managerID  int
		employeeID int
		setupMock  func()
		wantErr    func(error) bool
		wantSubs   []int
	}{
		{
			name:       "adds subordinate",
			managerID:  2,
			employeeID: 1,
			setupMock: func() {
				mockRepo.EXPECT().Exists(1).Return(true)
				mockRepo.EXPECT().Update(gomock.Any(), 2, gomock.Any()).DoAndReturn(applyUpdate(manager))
			},
			wantSubs: []int{1},
		},
		{
			name:       "adding twice keeps one entry",
			managerID:  2,
			employeeID: 1,
			setupMock: func() {
				withSub := manager
				withSub.Subordinates = []int{1}

				mockRepo.EXPECT().Exists(1).Return(true)
				mockRepo.EXPECT().Update(gomock.Any(), 2, gomock.Any()).DoAndReturn(applyUpdate(withSub))
			},
			wantSubs: []int{1},
		},
		{
			name:       "self supervision",
			managerID:  2,
			employeeID: 2,
			setupMock:  func() {},
			wantErr:    failure.IsValidation,
		},
		{
			name:       "unknown subordinate",
			managerID:  2,
			employeeID: 42,
			setupMock: func() {
				mockRepo.EXPECT().Exists(42).Return(false)
			},
			wantErr: failure.IsNotFound,
		},
		{
			name:       "non managerial title",
			managerID:  3,
			employeeID: 1,
			setupMock: func() {
				mockRepo.EXPECT().Exists(1).Return(true)
				mockRepo.EXPECT().Update(gomock.Any(), 3, gomock.Any()).DoAndReturn(applyUpdate(designer))
			},
			wantErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AddSubordinate(context.Background(), tt.managerID, tt.employeeID)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSubs, res.Subordinates)
		})
	}
}

func TestEmployeeService_RemoveSubordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	manager := model.Employee{ID: 2, JobTitle: model.JobTitleMarketingManager, Subordinates: []int{1, 4}}

	mockRepo.EXPECT().Update(gomock.Any(), 2, gomock.Any()).DoAndReturn(applyUpdate(manager)).Times(2)

	res, err := svc.RemoveSubordinate(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Subordinates)
	assert.Equal(t, []int{1, 4}, manager.Subordinates, "stored slice must not be modified in place")

	_, err = svc.RemoveSubordinate(context.Background(), 2, 7)
	assert.True(t, failure.IsNotFound(err))
}

func TestEmployeeService_Table(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().ListAll(gomock.Any()).Return([]gRepo.Entry[model.Employee]{
		{Key: 1, Record: model.Employee{ID: 1, Name: "Alice", JobTitle: model.JobTitleSalesperson, Salary: 50000}},
	})

	table := svc.Table(context.Background())

	assert.Equal(t, "Employees", table.Title)
	assert.Equal(t, model.Columns, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Alice", table.Rows[0][1])
}
