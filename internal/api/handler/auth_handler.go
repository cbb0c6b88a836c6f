package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// AuthHandler exposes the FiveM login flow.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginURLResponse struct {
	URL string `json:"url"`
}

type callbackResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FiveMID  string `json:"fivem_id"`
	Token    string `json:"token,omitempty"`
}

// Login returns the FiveM authorization URL for the browser to navigate to.
//
// @Summary      Get the FiveM OAuth login URL
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginURLResponse
// @Router       /v1/auth/fivem/login [get]
func (h *AuthHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, loginURLResponse{URL: h.authService.LoginURL()})
}

// Callback completes the FiveM login: it exchanges the authorization code,
// fetches the user profile, and resolves the local account.
//
// @Summary      FiveM OAuth callback
// @Tags         auth
// @Produce      json
// @Param        code  query     string  true  "Authorization code from the provider redirect"
// @Success      200   {object}  callbackResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/auth/fivem/callback [get]
func (h *AuthHandler) Callback(c echo.Context) error {
	result, err := h.authService.Callback(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, callbackResponse{
		Username: result.Username,
		Email:    result.Email,
		FiveMID:  result.FiveMID,
		Token:    result.Token,
	})
}

// Me returns the account behind the presented session token.
//
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.authService.User(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
