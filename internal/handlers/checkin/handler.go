package checkin

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/checkin/model"
	"lux/internal/domains/checkin/model/dto"
	"lux/internal/domains/checkin/service"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/check-ins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCheckIn)
		routerGroup.Get("/", handler.GetCheckIns)
		routerGroup.Get("/{id}", handler.GetCheckInByID)
		routerGroup.Patch("/{id}", handler.UpdateCheckIn)
		routerGroup.Patch("/{id}/status", handler.UpdateCheckInStatus)
		routerGroup.Delete("/{id}", handler.DeleteCheckIn)
	})
}

// CreateCheckIn handles the creation of a new check-in record.
// @Summary Create a new check-in record
// @Description Register an expected guest arrival at the front desk.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckInRequest true "Check-In Request"
// @Success 201 {object} response.Message "Check-in record created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins [post]
// @Security BearerAuth
func (handler *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckIn")
	defer scope.End()

	req := dto.CreateCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create check-in record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Check-in record created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Check-in record created successfully")
}

// GetCheckIns retrieves all check-in records based on query parameters.
// @Summary Get all check-in records
// @Description Retrieve all check-in records with optional filtering and pagination.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Param guest_name query string false "Filter by guest name"
// @Success 200 {object} response.Data[dto.GetCheckInsResponse] "List of check-in records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomID),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldGuestName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldGuestName),
				Table:    model.TableName,
			},
		},
	}

	checkIns, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in records retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkIns)
}

// GetCheckInByID retrieves a check-in record by its ID.
// @Summary Get a check-in record by ID
// @Description Retrieve a check-in record by its unique identifier.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-In ID"
// @Success 200 {object} response.Data[dto.CheckInResponse] "Check-in record details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCheckInByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckInByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	checkIn, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in record by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in record retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkIn)
}

// UpdateCheckIn updates an existing check-in record by its ID.
// @Summary Update a check-in record by ID
// @Description Update the details of an existing check-in record.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-In ID"
// @Param request body dto.UpdateCheckInRequest true "Update Check-In Request"
// @Success 200 {object} response.Message "Check-in record updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update check-in record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Check-in record updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Check-in record updated successfully")
}

// UpdateCheckInStatus moves a check-in record through its lifecycle.
// @Summary Update check-in status
// @Description Mark a guest as checked in, checked out or a no-show. Check-in and check-out timestamps are stamped automatically.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-In ID"
// @Param request body dto.UpdateCheckInStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Check-in status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCheckInStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckInStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCheckInStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update check-in status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Check-in status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Check-in status updated successfully")
}

// DeleteCheckIn deletes a check-in record by its ID.
// @Summary Delete a check-in record by ID
// @Description Delete a check-in record using its unique identifier.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-In ID"
// @Success 200 {object} response.Message "Check-in record deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/check-ins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete check-in record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Check-in record deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Check-in record deleted successfully")
}
