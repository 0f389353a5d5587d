package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(svc portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalEntryService: svc}
}

// RegisterJournalEntryRoutes registers the owner-scoped journal entry routes on
// an authenticated group.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, svc portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(svc)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("/:title", h.getJournalEntry)
		entries.PUT("/:title", h.updateJournalEntry)
		entries.DELETE("/:title", h.deleteJournalEntry)
	}
}

// RegisterAccountRoutes registers the public read of raw entry accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, svc portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(svc)
	rg.GET("/accounts/:address", h.getJournalEntryAccount)
	rg.GET("/addresses/:owner/:title", h.deriveAddress)
}

// ownerOrAbort returns the authenticated owner, writing a 401 if there is none.
func ownerOrAbort(c *gin.Context, logger *slog.Logger) (domain.PublicKey, bool) {
	owner, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		logger.Error("Owner not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return owner, ok
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Stores a new entry under (title, owner). The owner's wallet pays the storage deposit.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry title and message"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "TitleTooLong, TitleTooShort, MessageTooLong or MessageTooShort"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 402 {object} dto.ErrorResponse "InsufficientFunds"
// @Failure 409 {object} dto.ErrorResponse "AlreadyExists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Security SignedRequest
// @Router /entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalEntryService.CreateJournalEntry(c.Request.Context(), owner, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves the caller's entry with the given title
// @Tags entries
// @Produce  json
// @Param   title path string true "Entry title" MaxLength(50)
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "NotFound"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Security SignedRequest
// @Router /entries/{title} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalEntryService.GetJournalEntry(c.Request.Context(), owner, c.Param("title"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalEntry godoc
// @Summary Update a journal entry
// @Description Replaces the message of the caller's entry with the given title
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   title path string true "Entry title" MaxLength(50)
// @Param   entry body dto.UpdateJournalEntryRequest true "New message"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "TitleTooLong, TitleTooShort, MessageTooLong or MessageTooShort"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Signer does not own the entry"
// @Failure 404 {object} dto.ErrorResponse "NotFound"
// @Failure 500 {object} dto.ErrorResponse "Failed to update journal entry"
// @Security BearerAuth
// @Security SignedRequest
// @Router /entries/{title} [put]
func (h *journalEntryHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalEntryService.UpdateJournalEntry(c.Request.Context(), owner, c.Param("title"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntry godoc
// @Summary Delete a journal entry
// @Description Removes the caller's entry and refunds its storage deposit
// @Tags entries
// @Produce  json
// @Param   title path string true "Entry title" MaxLength(50)
// @Success 200 {object} dto.DeleteJournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Signer does not own the entry"
// @Failure 404 {object} dto.ErrorResponse "NotFound"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete journal entry"
// @Security BearerAuth
// @Security SignedRequest
// @Router /entries/{title} [delete]
func (h *journalEntryHandler) deleteJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerOrAbort(c, logger)
	if !ok {
		return
	}

	address, refunded, err := h.journalEntryService.DeleteJournalEntry(c.Request.Context(), owner, c.Param("title"))
	if err != nil {
		respondError(c, logger, err, "Failed to delete journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeleteJournalEntryResponse(address, refunded))
}

// getJournalEntryAccount godoc
// @Summary Get a journal entry account
// @Description Retrieves an entry by its derived address. No authentication is required.
// @Tags accounts
// @Produce  json
// @Param   address path string true "Base58 entry address"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid address"
// @Failure 404 {object} dto.ErrorResponse "NotFound"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve journal entry"
// @Router /accounts/{address} [get]
func (h *journalEntryHandler) getJournalEntryAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	address, err := domain.ParseAddress(c.Param("address"))
	if err != nil {
		respondError(c, logger, err, "Invalid address")
		return
	}

	entry, err := h.journalEntryService.GetJournalEntryByAddress(c.Request.Context(), address)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deriveAddress godoc
// @Summary Derive a journal entry address
// @Description Computes the address and bump an entry with this title and owner is stored at. The entry need not exist.
// @Tags accounts
// @Produce  json
// @Param   owner path string true "Base58 owner key"
// @Param   title path string true "Entry title" MaxLength(50)
// @Success 200 {object} dto.DerivedAddressResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid owner, TitleTooLong or TitleTooShort"
// @Failure 500 {object} dto.ErrorResponse "Failed to derive address"
// @Router /addresses/{owner}/{title} [get]
func (h *journalEntryHandler) deriveAddress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, err := domain.ParsePublicKey(c.Param("owner"))
	if err != nil {
		respondError(c, logger, err, "Invalid owner")
		return
	}

	title := c.Param("title")
	if err := domain.ValidateTitle(title); err != nil {
		respondError(c, logger, err, "Invalid title")
		return
	}

	address, bump, err := h.journalEntryService.DeriveAddress(owner, title)
	if err != nil {
		respondError(c, logger, err, "Failed to derive address")
		return
	}

	c.JSON(http.StatusOK, dto.DerivedAddressResponse{Address: address.String(), Bump: bump})
}
