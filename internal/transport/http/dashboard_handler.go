package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func RegisterDashboard(api *echo.Group, requireAuth echo.MiddlewareFunc, dashboard *service.DashboardService) {
	handler := &DashboardHandler{dashboard: dashboard}
	api.GET("/dashboard", handler.summary, requireAuth)
}

// summary handles GET /api/v1/dashboard
func (h *DashboardHandler) summary(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	summary, err := h.dashboard.Summary(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err, "unable to load dashboard")
	}
	return c.JSON(http.StatusOK, summary)
}
