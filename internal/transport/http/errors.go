package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

// writeServiceError maps service error classes to status codes. Anything
// unclassified is logged through the request and answered with fallback.
func writeServiceError(c echo.Context, err error, fallback string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, util.FieldErrors(service.ErrValidation.Error(), verr.Fields))
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, util.Error(err.Error()))
	case errors.Is(err, service.ErrDuplicateEntry):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrGoogleDisabled):
		return c.JSON(http.StatusServiceUnavailable, util.Error(err.Error()))
	default:
		c.Set(handlerErrorKey, err)
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, util.Error(message))
}
