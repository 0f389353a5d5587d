package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps an error class to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the error body for err. Journal entry failures carry
// their program error code and name; unexpected failures are logged and
// reported with fallbackMsg only.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: fallbackMsg})
		return
	}

	resp := dto.ErrorResponse{Error: err.Error()}
	if pe, ok := domain.AsProgramError(err); ok {
		code := pe.Code
		resp.Code = &code
		resp.Name = pe.Name
	}
	logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, resp)
}
