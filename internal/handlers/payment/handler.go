package payment

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/payment/model"
	"lux/internal/domains/payment/model/dto"
	"lux/internal/domains/payment/service"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/validator"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PaymentAccount
	otel    otel.Otel
}

func New(service service.PaymentAccount, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public payment account endpoint.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/payment-accounts/active", handler.GetActivePaymentAccounts)
}

// ErpRouter registers the staff-facing payment account endpoints.
func (handler *Handler) ErpRouter(router chi.Router) {
	router.Route("/payment-accounts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePaymentAccount)
		routerGroup.Get("/", handler.GetPaymentAccounts)
		routerGroup.Get("/{id}", handler.GetPaymentAccountByID)
		routerGroup.Patch("/{id}", handler.UpdatePaymentAccount)
		routerGroup.Delete("/{id}", handler.DeletePaymentAccount)
	})
}

// GetActivePaymentAccounts lists the bank accounts shown on the booking page.
// @Summary Get active payment accounts
// @Description Retrieve the active bank accounts guests can transfer to.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentAccountsResponse] "List of payment accounts"
// @Failure 500 {object} response.Error
// @Router /v1/payment-accounts/active [get]
func (handler *Handler) GetActivePaymentAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivePaymentAccounts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	accounts, err := handler.service.GetActive(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active payment accounts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active payment accounts retrieved successfully")

	response.WithJSON(w, http.StatusOK, accounts)
}

// CreatePaymentAccount handles the creation of a new payment account.
// @Summary Create a new payment account
// @Description Register a bank account guests can transfer to.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentAccountRequest true "Payment Account Request"
// @Success 201 {object} response.Message "Payment account created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/payment-accounts [post]
// @Security BearerAuth
func (handler *Handler) CreatePaymentAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentAccount")
	defer scope.End()

	req := dto.CreatePaymentAccountRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment account")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment account created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Payment account created successfully")
}

// GetPaymentAccounts retrieves all payment accounts based on query parameters.
// @Summary Get all payment accounts
// @Description Retrieve all payment accounts with optional filtering and pagination.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param bank_name query string false "Filter by bank name"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPaymentAccountsResponse] "List of payment accounts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/payment-accounts [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentAccounts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBankName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldBankName),
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

	accounts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment accounts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment accounts retrieved successfully")

	response.WithJSON(w, http.StatusOK, accounts)
}

// GetPaymentAccountByID retrieves a payment account by its ID.
// @Summary Get a payment account by ID
// @Description Retrieve a payment account by its unique identifier.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param id path string true "Payment Account ID"
// @Success 200 {object} response.Data[dto.PaymentAccountResponse] "Payment account details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/payment-accounts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentAccountByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentAccountByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	account, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment account by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment account retrieved successfully")

	response.WithJSON(w, http.StatusOK, account)
}

// UpdatePaymentAccount updates an existing payment account by its ID.
// @Summary Update a payment account by ID
// @Description Update the details of an existing payment account.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param id path string true "Payment Account ID"
// @Param request body dto.UpdatePaymentAccountRequest true "Update Payment Account Request"
// @Success 200 {object} response.Message "Payment account updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/payment-accounts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentAccount")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentAccountRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment account")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment account updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment account updated successfully")
}

// DeletePaymentAccount deletes a payment account by its ID.
// @Summary Delete a payment account by ID
// @Description Delete a payment account using its unique identifier.
// @Tags PaymentAccount
// @Accept json
// @Produce json
// @Param id path string true "Payment Account ID"
// @Success 200 {object} response.Message "Payment account deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/payment-accounts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePaymentAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePaymentAccount")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment account")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment account deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment account deleted successfully")
}
