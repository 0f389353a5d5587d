package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/SscSPs/journal_entry_store/internal/utils"
)

// authService issues session tokens to owners that sign a fresh login challenge.
type authService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// AuthServiceOption is a functional option for configuring the auth service
type AuthServiceOption func(*authService)

// WithAuthClock replaces the time source used for skew checks and token expiry.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, options ...AuthServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{cfg: cfg, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	owner, err := domain.ParsePublicKey(req.Owner)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !utils.WithinSkew(req.Timestamp, now, s.cfg.SignatureMaxSkew) {
		s.LogWarn(ctx, apperrors.ErrUnauthorized, "Login challenge outside allowed skew",
			slog.String("owner", req.Owner),
			slog.Int64("timestamp", req.Timestamp))
		return nil, fmt.Errorf("%w: login timestamp is stale", apperrors.ErrUnauthorized)
	}

	sig, err := utils.DecodeSignature(req.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if !owner.Verify(utils.LoginMessage(owner.String(), req.Timestamp), sig) {
		s.LogWarn(ctx, apperrors.ErrUnauthorized, "Login signature rejected", slog.String("owner", req.Owner))
		return nil, fmt.Errorf("%w: invalid login signature", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(owner.String(), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("owner", req.Owner))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Owner logged in", slog.String("owner", owner.String()))
	return &dto.LoginResponse{
		Token:     token,
		Owner:     owner.String(),
		ExpiresAt: expiresAt,
	}, nil
}
