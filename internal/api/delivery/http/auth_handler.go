package http

import (
	"net/http"

	"github.com/strongDoorknob/moodsy/internal/api/dto"
	"github.com/strongDoorknob/moodsy/internal/api/service"
	"github.com/strongDoorknob/moodsy/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for accounts and tokens.
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers the auth routes to the Echo group. Routes that
// need a caller are wrapped with requireAuth.
func (h *AuthHandler) RegisterRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
	g.GET("/me", h.Me, requireAuth)
	g.POST("/upgrade-to-pro", h.UpgradeToPro, requireAuth)
}

// Register godoc
// @Summary Register a new account
// @Description Create a user together with its profile
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body    dto.CredentialsRequest  true  "Email and password"
// @Success 201 {object} dto.DetailResponse
// @Failure 400 {object} dto.DetailResponse
// @Failure 500 {object} dto.DetailResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{keyDetail: "Invalid request payload"})
	}

	if err := h.authService.Register(c.Request().Context(), &req); err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusCreated, dto.DetailResponse{Detail: "User created successfully."})
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for an access and refresh token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body    dto.CredentialsRequest  true  "Email and password"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 401 {object} dto.DetailResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{keyDetail: "Invalid request payload"})
	}

	tokens, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary Refresh the access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh  body    dto.RefreshRequest  true  "Refresh token"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 401 {object} dto.DetailResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{keyDetail: "Invalid request payload"})
	}

	access, err := h.authService.Refresh(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusOK, access)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.DetailResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{keyDetail: "Authentication credentials were not provided."})
	}

	me, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusOK, me)
}

// UpgradeToPro godoc
// @Summary Upgrade to Pro
// @Description Set the pro flag on the caller's profile
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.UpgradeResponse
// @Failure 401 {object} dto.DetailResponse
// @Failure 404 {object} dto.DetailResponse
// @Router /auth/upgrade-to-pro [post]
func (h *AuthHandler) UpgradeToPro(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{keyDetail: "Authentication credentials were not provided."})
	}

	resp, err := h.authService.UpgradeToPro(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.logger, keyDetail, err)
	}
	return c.JSON(http.StatusOK, resp)
}
