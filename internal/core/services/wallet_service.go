package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
)

type walletService struct {
	BaseService
	walletRepo         portsrepo.WalletRepositoryFacade
	airdropEnabled     bool
	airdropMaxLamports int64
}

// WalletServiceOption is a functional option for configuring the wallet service
type WalletServiceOption func(*walletService)

// WithAirdrop enables development airdrops of at most maxLamports per request.
// A non-positive maxLamports removes the per-request cap.
func WithAirdrop(enabled bool, maxLamports int64) WalletServiceOption {
	return func(s *walletService) {
		s.airdropEnabled = enabled
		s.airdropMaxLamports = maxLamports
	}
}

// NewWalletService creates a new wallet service. Airdrops are disabled unless WithAirdrop enables them.
func NewWalletService(repo portsrepo.WalletRepositoryFacade, options ...WalletServiceOption) portssvc.WalletSvcFacade {
	svc := &walletService{walletRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) GetWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWallet(ctx, owner)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Wallet{Owner: owner}, nil
		}
		s.LogError(ctx, err, "Failed to get wallet", slog.String("owner", owner.String()))
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) Airdrop(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error) {
	if !s.airdropEnabled {
		return nil, fmt.Errorf("%w: airdrops are disabled", apperrors.ErrForbidden)
	}
	if lamports <= 0 {
		return nil, fmt.Errorf("%w: airdrop amount must be positive", apperrors.ErrValidation)
	}
	if s.airdropMaxLamports > 0 && lamports > s.airdropMaxLamports {
		return nil, fmt.Errorf("%w: airdrop amount %d exceeds limit %d", apperrors.ErrValidation, lamports, s.airdropMaxLamports)
	}

	wallet, err := s.walletRepo.CreditWallet(ctx, owner, lamports)
	if err != nil {
		s.LogError(ctx, err, "Failed to credit wallet", slog.String("owner", owner.String()))
		return nil, fmt.Errorf("failed to airdrop: %w", err)
	}

	s.LogInfo(ctx, "Airdrop credited",
		slog.String("owner", owner.String()),
		slog.Int64("lamports", lamports),
		slog.Int64("balance", wallet.Lamports))
	return wallet, nil
}
