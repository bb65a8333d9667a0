package client

import (
	"bestevents/infras/otel"
	"bestevents/internal/domains/client/model/dto"
	"bestevents/internal/domains/client/service"
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

const exportFilename = "clients.xlsx"

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/export", handler.ExportClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Patch("/{id}", handler.UpdateClient)
		routerGroup.Delete("/{id}", handler.DeleteClient)
	})
}

// CreateClient handles the creation of a new client booking.
// @Summary Create a new client booking
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clients [post]
func (handler *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	client, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client booking created with id " + strconv.Itoa(client.ClientID))

	response.WithJSON(w, http.StatusCreated, client)
}

// GetClients lists client bookings in insertion order.
// @Summary Get all client bookings
// @Tags Client
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetClientsResponse
// @Router /v1/clients [get]
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	clients, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client booking by its ID.
// @Summary Get a client booking by ID
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/clients/{id} [get]
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient updates the supplied fields of a client booking.
// @Summary Update a client booking by ID
// @Tags Client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clients/{id} [patch]
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateClientRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	client, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// DeleteClient deletes a client booking by its ID.
// @Summary Delete a client booking by ID
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clients/{id} [delete]
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Client booking deleted successfully")
}

// ExportClients downloads every client booking as a spreadsheet.
// @Summary Export client bookings
// @Tags Client
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /v1/clients/export [get]
func (handler *Handler) ExportClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportClients")
	defer scope.End()

	response.WithAttachment(w, exportFilename, constant.ContentTypeXLSX, handler.service.Table(ctx).WriteXLSX)
}
