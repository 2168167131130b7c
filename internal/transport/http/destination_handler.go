package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
}

func RegisterDestinations(api *echo.Group, destinations *service.DestinationService) {
	handler := &DestinationHandler{destinations: destinations}

	group := api.Group("/destinations")
	group.GET("", handler.list)
	group.GET("/search", handler.search)
	group.GET("/:slug", handler.details)
}

// list handles GET /api/v1/destinations
func (h *DestinationHandler) list(c echo.Context) error {
	destinations, err := h.destinations.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "unable to load destinations")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
		"count":        len(destinations),
	})
}

// search handles GET /api/v1/destinations/search?query=&limit=
func (h *DestinationHandler) search(c echo.Context) error {
	query := c.QueryParam("query")
	if strings.TrimSpace(query) == "" {
		query = c.QueryParam("q")
	}
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		limit = v
	}

	results, err := h.destinations.Search(c.Request().Context(), query, limit)
	if err != nil {
		return writeServiceError(c, err, "unable to search destinations")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"query":        strings.TrimSpace(query),
		"destinations": results,
		"count":        len(results),
	})
}

// details handles GET /api/v1/destinations/{slug}
func (h *DestinationHandler) details(c echo.Context) error {
	details, err := h.destinations.Details(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeServiceError(c, err, "unable to load destination")
	}
	return c.JSON(http.StatusOK, details)
}

type InfoHandler struct {
	destinations *service.DestinationService
}

func RegisterInfo(api *echo.Group, destinations *service.DestinationService) {
	handler := &InfoHandler{destinations: destinations}

	group := api.Group("/info")
	group.GET("/country", handler.country)
	group.GET("/regions", handler.regions)
	group.GET("/culture", handler.culture)
}

func (h *InfoHandler) country(c echo.Context) error {
	return c.JSON(http.StatusOK, h.destinations.CountryInfo(c.Request().Context()))
}

func (h *InfoHandler) regions(c echo.Context) error {
	stats, err := h.destinations.RegionalStats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "unable to load regional stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *InfoHandler) culture(c echo.Context) error {
	return c.JSON(http.StatusOK, h.destinations.CulturalInfo(c.Request().Context()))
}
