package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) error {
	h := NewAuthHandler(authService)

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.GinMiddlewarize(loginLimiter), h.Login)
	}
	return nil
}

// Login godoc
// @Summary Owner login
// @Description Verifies a signed login challenge and returns a JWT for the owner key.
// @Description The signature covers "journal-login:<owner>:<timestamp>".
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Signed login challenge"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, resp)
}
