package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected request with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that the signer is the owner recorded on the entry.
func (s *BaseService) AuthorizeOwner(ctx context.Context, signer domain.PublicKey, entry *domain.JournalEntry) error {
	if entry.Owner != signer {
		s.LogWarn(ctx, domain.ErrOwnerMismatch, "Signer does not own journal entry",
			slog.String("signer", signer.String()),
			slog.String("owner", entry.Owner.String()),
			slog.String("address", entry.Address.String()))
		return domain.ErrOwnerMismatch
	}
	return nil
}
