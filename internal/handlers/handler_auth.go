package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, login and principal lookup.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Extra handlers
// (rate limiting) run before each of them.
func registerAuthRoutes(r gin.IRouter, authService portssvc.AuthSvcFacade, guards ...gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/auth", guards...)
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// registerMeRoute exposes the authenticated principal under an authenticated group.
func registerMeRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.GET("/auth/me", h.me)
}

func toAuthResponse(res *portssvc.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      dto.ToUserResponse(res.User),
		Client:    dto.ToClientResponse(res.Client),
	}
}

// register godoc
// @Summary Register a company
// @Description Creates a company and its first user, then returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Company and user details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register")
		return
	}

	logger.Info("Company registered", slog.String("client_id", res.Client.ClientID), slog.String("user_id", res.User.UserID))
	c.JSON(http.StatusCreated, toAuthResponse(res))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.String("user_id", res.User.UserID))
	c.JSON(http.StatusOK, toAuthResponse(res))
}

// me godoc
// @Summary Current principal
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, client, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: dto.ToUserResponse(user), Client: dto.ToClientResponse(client)})
}
