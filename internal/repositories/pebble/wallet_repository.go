package pebblestore

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	"github.com/cockroachdb/pebble"
)

type walletRepository struct {
	db  *DB
	now func() time.Time
}

// NewWalletRepository creates a wallet repository over db.
func NewWalletRepository(db *DB) portsrepo.WalletRepositoryFacade {
	return &walletRepository{db: db, now: time.Now}
}

var _ portsrepo.WalletRepositoryFacade = (*walletRepository)(nil)

func (r *walletRepository) FindWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error) {
	return loadWallet(r.db, owner)
}

func (r *walletRepository) CreditWallet(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error) {
	if lamports <= 0 {
		return nil, fmt.Errorf("%w: credit must be positive", apperrors.ErrValidation)
	}
	var wallet *domain.Wallet
	err := r.db.update(ctx, func(b *pebble.Batch) error {
		var err error
		wallet, err = adjustWallet(r.db, b, owner, lamports, r.now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}
