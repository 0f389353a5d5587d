package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entry_store/internal/models"
	"github.com/SscSPs/journal_entry_store/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// FindWallet retrieves the wallet of owner.
func (r *PgxWalletRepository) FindWallet(ctx context.Context, owner domain.PublicKey) (*domain.Wallet, error) {
	query := `
		SELECT owner, lamports, created_at, last_updated_at
		FROM wallets
		WHERE owner = $1;
	`
	var m models.Wallet
	err := r.Pool.QueryRow(ctx, query, owner.String()).Scan(&m.Owner, &m.Lamports, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", owner, err)
	}
	wallet, err := mapping.ToDomainWallet(m)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreditWallet adds lamports to the owner's wallet, creating it on first credit.
func (r *PgxWalletRepository) CreditWallet(ctx context.Context, owner domain.PublicKey, lamports int64) (*domain.Wallet, error) {
	if lamports <= 0 {
		return nil, fmt.Errorf("%w: credit must be positive", apperrors.ErrValidation)
	}
	query := `
		INSERT INTO wallets (owner, lamports, created_at, last_updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (owner) DO UPDATE SET
			lamports = wallets.lamports + EXCLUDED.lamports,
			last_updated_at = EXCLUDED.last_updated_at
		RETURNING owner, lamports, created_at, last_updated_at;
	`
	var m models.Wallet
	err := r.Pool.QueryRow(ctx, query, owner.String(), lamports, time.Now().UTC()).
		Scan(&m.Owner, &m.Lamports, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to credit wallet %s: %w", owner, err)
	}
	wallet, err := mapping.ToDomainWallet(m)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// creditWallet credits lamports inside an existing unit of work.
func creditWallet(ctx context.Context, q querier, owner domain.PublicKey, lamports int64, now time.Time) error {
	if lamports == 0 {
		return nil
	}
	_, err := q.Exec(ctx, `
		INSERT INTO wallets (owner, lamports, created_at, last_updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (owner) DO UPDATE SET
			lamports = wallets.lamports + EXCLUDED.lamports,
			last_updated_at = EXCLUDED.last_updated_at;
	`, owner.String(), lamports, now)
	if err != nil {
		return fmt.Errorf("failed to credit wallet %s: %w", owner, err)
	}
	return nil
}

// debitWallet removes lamports inside an existing unit of work. It returns
// apperrors.ErrInsufficientFunds when the wallet is missing or too small.
func debitWallet(ctx context.Context, q querier, owner domain.PublicKey, lamports int64, now time.Time) error {
	if lamports == 0 {
		return nil
	}
	tag, err := q.Exec(ctx, `
		UPDATE wallets
		SET lamports = lamports - $2, last_updated_at = $3
		WHERE owner = $1 AND lamports >= $2;
	`, owner.String(), lamports, now)
	if err != nil {
		return fmt.Errorf("failed to debit wallet %s: %w", owner, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInsufficientFunds
	}
	return nil
}
