package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(api *echo.Group, requireAuth echo.MiddlewareFunc, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := api.Group("/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.POST("/google", handler.loginWithGoogle)
	group.POST("/logout", handler.logout, requireAuth)
	group.GET("/me", handler.me, requireAuth)
	group.DELETE("/me", handler.deleteAccount, requireAuth)
}

// register handles POST /api/v1/auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	result, err := h.auth.RegisterWithEmail(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return writeServiceError(c, err, "unable to register")
	}
	return c.JSON(http.StatusCreated, toAuthTokenResponse(result))
}

// login handles POST /api/v1/auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	result, err := h.auth.LoginWithEmail(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err, "unable to login")
	}
	return c.JSON(http.StatusOK, toAuthTokenResponse(result))
}

// loginWithGoogle handles POST /api/v1/auth/google
func (h *AuthHandler) loginWithGoogle(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return writeServiceError(c, err, "unable to login with google")
	}
	return c.JSON(http.StatusOK, toAuthTokenResponse(result))
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		return writeServiceError(c, err, "unable to logout")
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, AuthUserResponse{User: toAuthUser(user)})
}

// deleteAccount handles DELETE /api/v1/auth/me. Diaries, wishlist entries and
// reviews are removed with the account.
func (h *AuthHandler) deleteAccount(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.auth.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return writeServiceError(c, err, "unable to delete account")
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}
