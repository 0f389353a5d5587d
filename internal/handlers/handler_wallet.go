package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to the caller's wallet.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := &walletHandler{walletService: walletService}

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.getWallet)
		wallet.POST("/airdrop", h.airdrop)
	}
}

// getWallet godoc
// @Summary Get the caller's wallet
// @Description Returns the balance available to fund journal entry deposits
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve wallet"
// @Security BearerAuth
// @Security SignedRequest
// @Router /wallet [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), owner)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// airdrop godoc
// @Summary Airdrop development funds
// @Description Credits lamports to the caller's wallet. Disabled in production.
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   airdrop body dto.AirdropRequest true "Amount in lamports"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Airdrops disabled"
// @Failure 500 {object} dto.ErrorResponse "Failed to airdrop"
// @Security BearerAuth
// @Security SignedRequest
// @Router /wallet/airdrop [post]
func (h *walletHandler) airdrop(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AirdropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Airdrop", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	wallet, err := h.walletService.Airdrop(c.Request.Context(), owner, req.Lamports)
	if err != nil {
		respondError(c, logger, err, "Failed to airdrop")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}
