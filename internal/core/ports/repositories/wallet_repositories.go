package repositories

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
)

// WalletReader defines read operations for owner wallets
type WalletReader interface {
	// FindWallet retrieves the wallet of owner, or apperrors.ErrNotFound if it was never funded.
	FindWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error)
}

// WalletWriter defines write operations for owner wallets
type WalletWriter interface {
	// CreditWallet adds lamports to the owner's wallet, creating it if needed,
	// and returns the updated wallet.
	CreditWallet(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
