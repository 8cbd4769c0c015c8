package room

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/room/model"
	"lux/internal/domains/room/model/dto"
	"lux/internal/domains/room/service"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public room catalog endpoints.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// ErpRouter registers the staff-facing room management endpoints.
func (handler *Handler) ErpRouter(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Patch("/{id}/availability", handler.SetAvailability)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details and optional image.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number formData string true "Room number"
// @Param name formData string true "Room name"
// @Param description formData string false "Room description"
// @Param type formData string true "Room type"
// @Param price_per_night formData integer true "Price per night in minor units"
// @Param capacity formData integer true "Room capacity"
// @Param features formData []string false "Room features"
// @Param is_available formData boolean false "Room availability"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber: r.FormValue(model.FieldRoomNumber),
		Name:       r.FormValue(model.FieldName),
		Type:       r.FormValue(model.FieldType),
		Features:   r.MultipartForm.Value[model.FieldFeatures],
	}

	if description := r.FormValue(model.FieldDescription); description != "" {
		req.Description = &description
	}

	if priceStr := r.FormValue(model.FieldPricePerNight); priceStr != "" {
		if price, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.PricePerNight = int64(price)
		}
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if availableStr := r.FormValue(model.FieldIsAvailable); availableStr != "" {
		req.IsAvailable = shared.ConvertStringToBool(availableStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param name query string false "Filter by name"
// @Param is_available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldType),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param room_number formData string false "Room number"
// @Param name formData string false "Room name"
// @Param description formData string false "Room description"
// @Param type formData string false "Room type"
// @Param price_per_night formData integer false "Price per night in minor units"
// @Param capacity formData integer false "Room capacity"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomNumber: r.FormValue(model.FieldRoomNumber),
		Name:       r.FormValue(model.FieldName),
		Type:       r.FormValue(model.FieldType),
	}

	if description := r.FormValue(model.FieldDescription); description != "" {
		req.Description = &description
	}

	if priceStr := r.FormValue(model.FieldPricePerNight); priceStr != "" {
		if price, err := shared.ConvertStringToInt(priceStr); err == nil {
			price64 := int64(price)
			req.PricePerNight = &price64
		}
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// SetAvailability flips the availability flag of a room.
// @Summary Set room availability
// @Description Override the availability flag of a room. Direct toggles are last write wins.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SetAvailabilityRequest true "Availability Request"
// @Success 200 {object} response.Message "Room availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/rooms/{id}/availability [patch]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAvailability(ctx, id, *req.IsAvailable); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set room availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room availability updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Room availability updated successfully")
}
