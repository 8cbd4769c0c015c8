package report

import (
	"net/http"

	"lux/infras/otel"
	"lux/internal/domains/report/service"
	"lux/shared/constant"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary returns the dashboard summary.
// @Summary Get the report summary
// @Description Retrieve booking totals, occupancy rate, estimated revenue and breakdowns for the dashboard.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Report summary"
// @Failure 500 {object} response.Error
// @Router /v1/erp/reports/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get report summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
