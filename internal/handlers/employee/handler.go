package employee

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/employee/model/dto"
	"bestevents/internal/domains/employee/service"
	"bestevents/shared"
	"bestevents/shared/constant"
	gDto "bestevents/shared/dto"
	"bestevents/shared/validator"
	"bestevents/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const exportFilename = "employees.xlsx"

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/export", handler.ExportEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
		routerGroup.Post("/{id}/subordinates", handler.AddSubordinate)
		routerGroup.Delete("/{id}/subordinates/{subordinateID}", handler.RemoveSubordinate)
	})
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created with id " + strconv.Itoa(employee.ID))

	response.WithJSON(w, http.StatusCreated, employee)
}

// GetEmployees lists employees in insertion order.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetEmployeesResponse
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	employees, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates the supplied fields of an employee.
// @Summary Update an employee by ID
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/employees/{id} [patch]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateEmployeeRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee by ID
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}

// ExportEmployees downloads every employee as a spreadsheet.
// @Summary Export employees
// @Tags Employee
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /v1/employees/export [get]
func (handler *Handler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportEmployees")
	defer scope.End()

	response.WithAttachment(w, exportFilename, constant.ContentTypeXLSX, handler.service.Table(ctx).WriteXLSX)
}

// AddSubordinate puts an existing employee under a manager.
// @Summary Add a subordinate to a manager
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "Manager ID"
// @Param request body dto.SubordinateRequest true "Subordinate Request"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id}/subordinates [post]
func (handler *Handler) AddSubordinate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddSubordinate")
	defer scope.End()

	managerID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.SubordinateRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	manager, err := handler.service.AddSubordinate(ctx, managerID, req.EmployeeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("manager_id", managerID).Int("employee_id", req.EmployeeID).Msg("failed to add subordinate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, manager)
}

// RemoveSubordinate detaches an employee from a manager.
// @Summary Remove a subordinate from a manager
// @Tags Employee
// @Produce json
// @Param id path int true "Manager ID"
// @Param subordinateID path int true "Subordinate ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id}/subordinates/{subordinateID} [delete]
func (handler *Handler) RemoveSubordinate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveSubordinate")
	defer scope.End()

	managerID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	employeeID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamSubordinateID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	manager, err := handler.service.RemoveSubordinate(ctx, managerID, employeeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("manager_id", managerID).Int("employee_id", employeeID).Msg("failed to remove subordinate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, manager)
}
