package housekeeping

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/housekeeping/model"
	"lux/internal/domains/housekeeping/model/dto"
	"lux/internal/domains/housekeeping/service"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Patch("/{id}", handler.UpdateTask)
		routerGroup.Patch("/{id}/status", handler.UpdateTaskStatus)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask handles the creation of a new housekeeping task.
// @Summary Create a new housekeeping task
// @Description Create a housekeeping task for a room.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task Request"
// @Success 201 {object} response.Message "Housekeeping task created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping task created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Housekeeping task created successfully")
}

// GetTasks retrieves all housekeeping tasks based on query parameters.
// @Summary Get all housekeeping tasks
// @Description Retrieve all housekeeping tasks with optional filtering and pagination.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by task type"
// @Param priority query string false "Filter by priority"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetTasksResponse] "List of housekeeping tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
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
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldType),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPriority,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldPriority),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomID),
				Table:    model.TableName,
			},
		},
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves a housekeeping task by its ID.
// @Summary Get a housekeeping task by ID
// @Description Retrieve a housekeeping task by its unique identifier.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse] "Housekeeping task details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping task by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task retrieved successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask updates an existing housekeeping task by its ID.
// @Summary Update a housekeeping task by ID
// @Description Update the details of an existing housekeeping task.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} response.Message "Housekeeping task updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping task updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Housekeeping task updated successfully")
}

// UpdateTaskStatus moves a housekeeping task through its lifecycle.
// @Summary Update housekeeping task status
// @Description Move a task between pending, in progress and completed. Completion stamps the completion time.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Housekeeping task status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaskStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaskStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping task status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Housekeeping task status updated successfully")
}

// DeleteTask deletes a housekeeping task by its ID.
// @Summary Delete a housekeeping task by ID
// @Description Delete a housekeeping task using its unique identifier.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Housekeeping task deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/housekeeping/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping task deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Housekeeping task deleted successfully")
}
