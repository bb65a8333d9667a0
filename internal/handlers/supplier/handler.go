package supplier

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/supplier/model/dto"
	"bestevents/internal/domains/supplier/service"
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

const exportFilename = "suppliers.xlsx"

type Handler struct {
	service service.Supplier
	otel    otel.Otel
}

func New(service service.Supplier, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/suppliers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSupplier)
		routerGroup.Get("/", handler.GetSuppliers)
		routerGroup.Get("/export", handler.ExportSuppliers)
		routerGroup.Get("/{id}", handler.GetSupplierByID)
		routerGroup.Patch("/{id}", handler.UpdateSupplier)
		routerGroup.Delete("/{id}", handler.DeleteSupplier)
	})
}

// CreateSupplier handles the creation of a new supplier.
// @Summary Create a new supplier
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierRequest true "Create Supplier Request"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/suppliers [post]
func (handler *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSupplier")
	defer scope.End()

	req := dto.CreateSupplierRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	supplier, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create supplier")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplier created with id " + strconv.Itoa(supplier.SupplierID))

	response.WithJSON(w, http.StatusCreated, supplier)
}

// GetSuppliers lists suppliers in insertion order.
// @Summary Get all suppliers
// @Tags Supplier
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetSuppliersResponse
// @Router /v1/suppliers [get]
func (handler *Handler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuppliers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	suppliers, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get suppliers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, suppliers)
}

// GetSupplierByID retrieves a supplier by its ID.
// @Summary Get a supplier by ID
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/suppliers/{id} [get]
func (handler *Handler) GetSupplierByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupplierByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	supplier, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get supplier by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, supplier)
}

// UpdateSupplier updates the supplied fields of a supplier.
// @Summary Update a supplier by ID
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body dto.UpdateSupplierRequest true "Update Supplier Request"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/suppliers/{id} [patch]
func (handler *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSupplier")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateSupplierRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	supplier, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update supplier")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, supplier)
}

// DeleteSupplier deletes a supplier by its ID.
// @Summary Delete a supplier by ID
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/suppliers/{id} [delete]
func (handler *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSupplier")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete supplier")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Supplier deleted successfully")
}

// ExportSuppliers downloads every supplier as a spreadsheet.
// @Summary Export suppliers
// @Tags Supplier
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /v1/suppliers/export [get]
func (handler *Handler) ExportSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportSuppliers")
	defer scope.End()

	response.WithAttachment(w, exportFilename, constant.ContentTypeXLSX, handler.service.Table(ctx).WriteXLSX)
}
