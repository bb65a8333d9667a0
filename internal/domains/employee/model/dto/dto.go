package dto

import (
	"bestevents/internal/domains/employee/model"
	"bestevents/shared"
	gDto "bestevents/shared/dto"
	"slices"
	"time"
)

type CreateEmployeeRequest struct {
	Name       string         `json:"name" validate:"required,notblank,max=255"`
	Department string         `json:"department" validate:"required,notblank,max=255"`
	JobTitle   model.JobTitle `json:"job_title" validate:"required,enum"`
	// Salary is drawn from the default range when omitted.
	Salary *int `json:"salary" validate:"omitempty,gt=0"`
}

func (c *CreateEmployeeRequest) ToModel(id, salary int, now time.Time) model.Employee {
	if c.Salary != nil {
		salary = *c.Salary
	}

	employee := model.Employee{
		ID:         id,
		Name:       c.Name,
		Department: c.Department,
		JobTitle:   c.JobTitle,
		Salary:     salary,
	}
	employee.Touch(now)

	return employee
}

// UpdateEmployeeRequest changes only the fields that are set.
type UpdateEmployeeRequest struct {
	Name       *string         `json:"name" validate:"omitempty,notblank,max=255"`
	Department *string         `json:"department" validate:"omitempty,notblank,max=255"`
	JobTitle   *model.JobTitle `json:"job_title" validate:"omitempty,enum"`
	Salary     *int            `json:"salary" validate:"omitempty,gt=0"`
}

func (u *UpdateEmployeeRequest) IsEmpty() bool {
	return u.Name == nil && u.Department == nil && u.JobTitle == nil && u.Salary == nil
}

func (u *UpdateEmployeeRequest) Apply(employee *model.Employee, now time.Time) {
	if u.Name != nil {
		employee.Name = *u.Name
	}

	if u.Department != nil {
		employee.Department = *u.Department
	}

	if u.JobTitle != nil {
		employee.JobTitle = *u.JobTitle
	}

	if u.Salary != nil {
		employee.Salary = *u.Salary
	}

	employee.Touch(now)
}

type SubordinateRequest struct {
	EmployeeID int `json:"employee_id" validate:"required,gt=0"`
}

type EmployeeResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	JobTitle      string `json:"job_title"`
	JobTitleLabel string `json:"job_title_label"`
	Salary        int    `json:"salary"`
	IsManager     bool   `json:"is_manager"`
	Subordinates  []int  `json:"subordinates"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Name = model.Name
	r.Department = model.Department
	r.JobTitle = string(model.JobTitle)
	r.JobTitleLabel = model.JobTitle.Label()
	r.Salary = model.Salary
	r.IsManager = model.IsManager()
	r.Subordinates = slices.Clone(model.Subordinates)

	if r.Subordinates == nil {
		r.Subordinates = []int{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}

