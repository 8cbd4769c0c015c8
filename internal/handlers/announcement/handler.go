package announcement

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/announcement/model"
	"lux/internal/domains/announcement/model/dto"
	"lux/internal/domains/announcement/service"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Announcement
	otel    otel.Otel
}

func New(service service.Announcement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public announcement endpoint.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/announcements/active", handler.GetActiveAnnouncements)
}

// ErpRouter registers the staff-facing announcement endpoints.
func (handler *Handler) ErpRouter(router chi.Router) {
	router.Route("/announcements", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAnnouncement)
		routerGroup.Get("/", handler.GetAnnouncements)
		routerGroup.Get("/{id}", handler.GetAnnouncementByID)
		routerGroup.Patch("/{id}", handler.UpdateAnnouncement)
		routerGroup.Delete("/{id}", handler.DeleteAnnouncement)
	})
}

// GetActiveAnnouncements lists the announcements currently visible to an audience.
// @Summary Get active announcements
// @Description Retrieve active, unexpired announcements for the given audience.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param audience query string false "Audience (public or staff)"
// @Success 200 {object} response.Data[dto.GetAnnouncementsResponse] "List of announcements"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/announcements/active [get]
func (handler *Handler) GetActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveAnnouncements")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	audience := r.URL.Query().Get(model.FieldAudience)
	if audience == constant.Empty {
		audience = constant.AudiencePublic
	}

	announcements, err := handler.service.GetActive(ctx, queryParams, audience)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active announcements")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active announcements retrieved successfully")

	response.WithJSON(w, http.StatusOK, announcements)
}

// CreateAnnouncement handles the creation of a new announcement.
// @Summary Create a new announcement
// @Description Create an announcement for the booking page or staff dashboard.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnouncementRequest true "Announcement Request"
// @Success 201 {object} response.Message "Announcement created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/announcements [post]
// @Security BearerAuth
func (handler *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAnnouncement")
	defer scope.End()

	req := dto.CreateAnnouncementRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create announcement")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Announcement created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Announcement created successfully")
}

// GetAnnouncements retrieves all announcements based on query parameters.
// @Summary Get all announcements
// @Description Retrieve all announcements with optional filtering and pagination.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param audience query string false "Filter by audience"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetAnnouncementsResponse] "List of announcements"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/announcements [get]
// @Security BearerAuth
func (handler *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncements")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldTitle),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAudience,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldAudience),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	announcements, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get announcements")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Announcements retrieved successfully")

	response.WithJSON(w, http.StatusOK, announcements)
}

// GetAnnouncementByID retrieves an announcement by its ID.
// @Summary Get an announcement by ID
// @Description Retrieve an announcement by its unique identifier.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Data[dto.AnnouncementResponse] "Announcement details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/announcements/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAnnouncementByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnnouncementByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	announcement, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get announcement by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Announcement retrieved successfully")

	response.WithJSON(w, http.StatusOK, announcement)
}

// UpdateAnnouncement updates an existing announcement by its ID.
// @Summary Update an announcement by ID
// @Description Update the details of an existing announcement.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Update Announcement Request"
// @Success 200 {object} response.Message "Announcement updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/announcements/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAnnouncementRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update announcement")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Announcement updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Announcement updated successfully")
}

// DeleteAnnouncement deletes an announcement by its ID.
// @Summary Delete an announcement by ID
// @Description Delete an announcement using its unique identifier.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Message "Announcement deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/announcements/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAnnouncement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete announcement")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Announcement deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Announcement deleted successfully")
}
