package staff

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/staff/model"
	"lux/internal/domains/staff/model/dto"
	"lux/internal/domains/staff/service"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)
		routerGroup.Patch("/{id}", handler.UpdateStaff)
		routerGroup.Post("/{id}/reset-code", handler.ResetCode)
		routerGroup.Delete("/{id}", handler.DeleteStaff)
		routerGroup.Post("/{id}/documents", handler.UploadDocument)
		routerGroup.Get("/{id}/documents", handler.GetDocuments)
		routerGroup.Delete("/{id}/documents/{document_id}", handler.DeleteDocument)
	})
}

// CreateStaff handles the creation of a new staff member.
// @Summary Create a new staff member
// @Description Create a staff member record. A staff code is generated and returned once.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff Request"
// @Success 201 {object} response.Data[dto.StaffResponse] "Staff member created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff member created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetStaff retrieves all staff members based on query parameters.
// @Summary Get all staff members
// @Description Retrieve all staff members with optional filtering and pagination.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param role query string false "Filter by role"
// @Param shift query string false "Filter by shift"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
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
				Field:    model.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRole),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldShift,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldShift),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	staff, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff members retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// GetStaffByID retrieves a staff member by their ID.
// @Summary Get a staff member by ID
// @Description Retrieve a staff member by their unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff member details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	staff, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff member by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff member retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// UpdateStaff updates an existing staff member by their ID.
// @Summary Update a staff member by ID
// @Description Update the details of an existing staff member.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Message "Staff member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff member updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff member updated successfully")
}

// ResetCode regenerates the staff code of a staff member.
// @Summary Reset staff code
// @Description Generate a new staff code for a staff member. The code is returned once.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.ResetCodeResponse] "New staff code"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id}/reset-code [post]
// @Security BearerAuth
func (handler *Handler) ResetCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetCode")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ResetCode(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset staff code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff code reset by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteStaff deletes a staff member by their ID.
// @Summary Delete a staff member by ID
// @Description Delete a staff member using their unique identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Message "Staff member deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff member deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Staff member deleted successfully")
}

// UploadDocument attaches a document to a staff member.
// @Summary Upload a staff document
// @Description Upload a document file for a staff member.
// @Tags Staff
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Staff ID"
// @Param name formData string true "Document name"
// @Param file formData file true "Document file"
// @Success 201 {object} response.Data[dto.DocumentResponse] "Document uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id}/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadDocumentRequest{
		Name: r.FormValue(model.DocumentFieldName),
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

	res, err := handler.service.UploadDocument(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload staff document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff document uploaded by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDocuments lists the documents of a staff member.
// @Summary Get staff documents
// @Description Retrieve all documents attached to a staff member.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of documents"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id}/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetDocuments(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteDocument removes a document from a staff member.
// @Summary Delete a staff document
// @Description Delete a document attached to a staff member.
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/staff/{id}/documents/{document_id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	documentID := chi.URLParam(r, constant.RequestParamDocumentID)

	if err := handler.service.DeleteDocument(ctx, id, documentID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Staff document deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
