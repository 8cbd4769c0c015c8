package booking

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/booking/model"
	"lux/internal/domains/booking/model/dto"
	"lux/internal/domains/booking/service"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the guest-facing booking endpoints.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/reference/{ref}", handler.GetBookingByReference)
		routerGroup.Post("/reference/{ref}/payment-proof", handler.UploadPaymentProof)
	})
}

// ErpRouter registers the staff-facing booking endpoints.
func (handler *Handler) ErpRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the public booking form.
// @Summary Create a new booking
// @Description Book an available room. Returns the reference number the guest uses to track the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking Request"
// @Success 201 {object} dto.CreateBookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created with reference " + res.ReferenceNumber)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookingByReference lets a guest look up their booking.
// @Summary Get a booking by reference number
// @Description Retrieve a booking using its reference number. The lookup is case-insensitive.
// @Tags Booking
// @Accept json
// @Produce json
// @Param ref path string true "Booking reference number"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reference/{ref} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	ref := chi.URLParam(r, constant.RequestParamReference)

	booking, err := handler.service.GetByReference(ctx, ref)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by reference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UploadPaymentProof attaches a payment proof file to a booking.
// @Summary Upload payment proof
// @Description Upload a transfer receipt for a booking identified by its reference number.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param ref path string true "Booking reference number"
// @Param proof formData file true "Payment proof file"
// @Success 200 {object} response.Message "Payment proof uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reference/{ref}/payment-proof [post]
func (handler *Handler) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPaymentProof")
	defer scope.End()

	ref := chi.URLParam(r, constant.RequestParamReference)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.PaymentProofRequest{}

	file, fileHeader, err := r.FormFile("proof")
	if err == nil {
		req.Proof = fileHeader
		req.ProofFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UploadPaymentProof(ctx, req, ref); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload payment proof")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment proof uploaded for booking " + ref)

	response.WithMessage(w, http.StatusOK, "Payment proof uploaded successfully")
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_status query string false "Filter by booking status"
// @Param payment_status query string false "Filter by payment status"
// @Param room_id query string false "Filter by room"
// @Param guest_name query string false "Filter by guest name"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldBookingStatus),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPaymentStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPaymentStatus),
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

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates guest details on an existing booking.
// @Summary Update a booking by ID
// @Description Update the guest details of an existing booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Update booking status
// @Description Transition a booking between lifecycle states and optionally confirm its payment.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking and release its room when the booking was still active.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
