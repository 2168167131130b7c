package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
)

const apiPrefix = "/api/v1"

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth         *service.AuthService
	Destinations *service.DestinationService
	Reviews      *service.ReviewService
	Wishlist     *service.WishlistService
	Diaries      *service.DiaryService
	Dashboard    *service.DashboardService
}

func NewRouter(allowOrigins []string, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	allowCredentials := true
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	registerLogging(e, logger)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
		},
		AllowCredentials: allowCredentials,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	return e
}

// RegisterRoutes mounts every API handler under /api/v1.
func RegisterRoutes(e *echo.Echo, s Services) {
	api := e.Group(apiPrefix)
	requireAuth := RequireAuth(s.Auth)

	RegisterAuth(api, requireAuth, s.Auth)
	RegisterDestinations(api, s.Destinations)
	RegisterReviews(api, requireAuth, s.Reviews)
	RegisterWishlist(api, requireAuth, s.Wishlist)
	RegisterDiaries(api, requireAuth, s.Diaries)
	RegisterDashboard(api, requireAuth, s.Dashboard)
	RegisterInfo(api, s.Destinations)
	RegisterSwagger(e)
}
