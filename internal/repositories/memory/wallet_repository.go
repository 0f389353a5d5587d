package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
)

type walletRepository struct {
	store *Store
}

// NewWalletRepository creates a wallet repository over store.
func NewWalletRepository(store *Store) portsrepo.WalletRepositoryFacade {
	return &walletRepository{store: store}
}

var _ portsrepo.WalletRepositoryFacade = (*walletRepository)(nil)

func (r *walletRepository) FindWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallet, ok := r.store.wallets[owner]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &wallet, nil
}

func (r *walletRepository) CreditWallet(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error) {
	if lamports <= 0 {
		return nil, fmt.Errorf("%w: credit must be positive", apperrors.ErrValidation)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallet, err := r.store.adjustWallet(owner, lamports)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
