package http

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

const dateLayout = "2006-01-02"

type WishlistHandler struct {
	wishlist *service.WishlistService
}

type wishlistRequest struct {
	DestinationID string       `json:"destination_id"`
	Notes         *string      `json:"notes"`
	Priority      *int         `json:"priority"`
	PlannedDate   nullableDate `json:"planned_date"`
}

// nullableDate tells an absent planned_date apart from an explicit null,
// which clears the stored date.
type nullableDate struct {
	Set   bool
	Value string
}

func (d *nullableDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.Value = ""
		return nil
	}
	return json.Unmarshal(data, &d.Value)
}

func (r wishlistRequest) input() (service.WishlistInput, error) {
	input := service.WishlistInput{Notes: r.Notes, Priority: r.Priority}
	if raw := strings.TrimSpace(r.DestinationID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, errors.New("destination_id must be a valid UUID")
		}
		input.DestinationID = id
	}
	if r.PlannedDate.Set {
		if strings.TrimSpace(r.PlannedDate.Value) == "" {
			input.ClearPlannedDate = true
			return input, nil
		}
		planned, err := parseDate(r.PlannedDate.Value)
		if err != nil {
			return input, errors.New("planned_date must be YYYY-MM-DD")
		}
		input.PlannedDate = &planned
	}
	return input, nil
}

func RegisterWishlist(api *echo.Group, requireAuth echo.MiddlewareFunc, wishlist *service.WishlistService) {
	handler := &WishlistHandler{wishlist: wishlist}

	group := api.Group("/wishlist", requireAuth)
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.GET("/check/:destination_id", handler.check)
	group.PUT("/:id", handler.update)
	group.DELETE("/:id", handler.remove)
}

// create handles POST /api/v1/wishlist
func (h *WishlistHandler) create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.DestinationID) == "" {
		return badRequest(c, "destination_id is required")
	}
	input, err := req.input()
	if err != nil {
		return badRequest(c, err.Error())
	}

	entry, err := h.wishlist.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return writeServiceError(c, err, "unable to update wishlist")
	}
	return c.JSON(http.StatusCreated, util.Envelope{
		"wishlist": entry,
		"message":  "Destination added to wishlist",
	})
}

// update handles PUT /api/v1/wishlist/{id}
func (h *WishlistHandler) update(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid wishlist id")
	}
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	input, err := req.input()
	if err != nil {
		return badRequest(c, err.Error())
	}

	entry, err := h.wishlist.Update(c.Request().Context(), user.ID, id, input)
	if err != nil {
		return writeServiceError(c, err, "unable to update wishlist")
	}
	return c.JSON(http.StatusOK, util.Envelope{"wishlist": entry})
}

// remove handles DELETE /api/v1/wishlist/{id}
func (h *WishlistHandler) remove(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid wishlist id")
	}
	if err := h.wishlist.Delete(c.Request().Context(), user.ID, id); err != nil {
		return writeServiceError(c, err, "unable to update wishlist")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"id":      id,
		"message": "Destination removed from wishlist",
	})
}

// list handles GET /api/v1/wishlist
func (h *WishlistHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	limit, offset := parsePagination(c, 0, 0)
	items, err := h.wishlist.List(c.Request().Context(), user.ID, limit, offset)
	if err != nil {
		return writeServiceError(c, err, "unable to load wishlist")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"items": items,
		"count": len(items),
	})
}

// check handles GET /api/v1/wishlist/check/{destination_id}
func (h *WishlistHandler) check(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	destinationID, ok := parseUUIDParam(c, "destination_id")
	if !ok {
		return badRequest(c, "destination_id must be a valid UUID")
	}
	found, entry, err := h.wishlist.Check(c.Request().Context(), user.ID, destinationID)
	if err != nil {
		return writeServiceError(c, err, "unable to check wishlist")
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"in_wishlist": found,
		"wishlist":    entry,
	})
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
