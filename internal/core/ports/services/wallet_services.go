package services

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
)

// WalletSvcFacade defines operations on owner wallets
type WalletSvcFacade interface {
	// GetWallet returns the owner's wallet; an unfunded owner has a zero balance.
	GetWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error)

	// Airdrop credits development funds to the owner's wallet.
	Airdrop(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error)
}
