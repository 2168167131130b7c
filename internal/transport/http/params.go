package http

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parsePagination reads limit and offset, keeping the defaults for missing or
// malformed values. The services clamp the final range.
func parsePagination(c echo.Context, defaultLimit, defaultOffset int) (int, int) {
	limit, offset := defaultLimit, defaultOffset
	if v, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("limit"))); err == nil {
		limit = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("offset"))); err == nil {
		offset = v
	}
	return limit, offset
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
