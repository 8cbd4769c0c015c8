package module

import (
	"net/http"
	"strings"

	"lux/infras/otel"
	"lux/permissions"
	"lux/shared/constant"
	"lux/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/modules", handler.GetModules)
}

type ModulesResponse struct {
	Role    string   `json:"role"`
	Modules []string `json:"modules"`
}

// GetModules returns the ERP modules visible to the caller.
// @Summary Get accessible modules
// @Description Retrieve the ERP modules the caller's role can open. Admins may pass view_as to preview another role's set; authorization still runs against the real token role.
// @Tags Module
// @Accept json
// @Produce json
// @Param view_as query string false "Preview the module set of another role (admin only)"
// @Success 200 {object} response.Data[ModulesResponse] "Accessible modules"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/erp/modules [get]
// @Security BearerAuth
func (handler *Handler) GetModules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetModules")
	defer scope.End()

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if viewAs := r.URL.Query().Get(constant.RequestParamViewAs); viewAs != constant.Empty && strings.EqualFold(role, constant.RoleAdmin) {
		role = viewAs
	}

	res := ModulesResponse{
		Role:    role,
		Modules: permissions.Modules(role),
	}

	scope.AddEvent("Accessible modules retrieved for role " + role)

	response.WithJSON(w, http.StatusOK, res)
}
