package guest

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/guest/model"
	"lux/internal/domains/guest/model/dto"
	"lux/internal/domains/guest/service"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
		routerGroup.Post("/{id}/receipts", handler.CreateReceipt)
		routerGroup.Get("/{id}/receipts", handler.GetReceipts)
	})
}

// CreateGuest handles the creation of a new guest profile.
// @Summary Create a new guest profile
// @Description Create a guest profile with contact details and notes.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest Request"
// @Success 201 {object} response.Message "Guest profile created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest profile created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Guest profile created successfully")
}

// GetGuests retrieves all guest profiles based on query parameters.
// @Summary Get all guest profiles
// @Description Retrieve all guest profiles with optional filtering and pagination.
// @Tags Guest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guest profiles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldEmail),
				Table:    model.TableName,
			},
		},
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest profiles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest profiles retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest profile by its ID.
// @Summary Get a guest profile by ID
// @Description Retrieve a guest profile by its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest profile details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest profile by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates an existing guest profile by its ID.
// @Summary Update a guest profile by ID
// @Description Update the details of an existing guest profile.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message "Guest profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest profile updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest profile updated successfully")
}

// DeleteGuest deletes a guest profile by its ID.
// @Summary Delete a guest profile by ID
// @Description Delete a guest profile using its unique identifier.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message "Guest profile deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest profile deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest profile deleted successfully")
}

// CreateReceipt issues a receipt for a guest.
// @Summary Create a guest receipt
// @Description Issue a receipt for a guest with an optional scanned file.
// @Tags Guest
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Guest ID"
// @Param description formData string true "Receipt description"
// @Param amount formData integer true "Receipt amount in minor units"
// @Param file formData file false "Receipt file"
// @Success 201 {object} response.Data[dto.ReceiptResponse] "Receipt created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests/{id}/receipts [post]
// @Security BearerAuth
func (handler *Handler) CreateReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateReceiptRequest{
		Description: r.FormValue(model.ReceiptFieldDescription),
	}

	if amountStr := r.FormValue(model.ReceiptFieldAmount); amountStr != "" {
		if amount, err := shared.ConvertStringToInt(amountStr); err == nil {
			req.Amount = int64(amount)
		}
	}

	file, fileHeader, err := r.FormFile("file")
	if err == nil {
		req.File = fileHeader
		req.FileData = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateReceipt(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest receipt")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest receipt created by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReceipts lists the receipts of a guest.
// @Summary Get guest receipts
// @Description Retrieve all receipts issued for a guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GetReceiptsResponse] "List of receipts"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/guests/{id}/receipts [get]
// @Security BearerAuth
func (handler *Handler) GetReceipts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipts")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetReceipts(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest receipts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest receipts retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
