package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by SQL-backed repositories whose units of
// work span more than one table (an entry row and its owner's wallet row).
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a transaction that already finished.
	Rollback(ctx context.Context, tx pgx.Tx) error

	// WithTx runs fn inside one transaction, committing only if fn succeeds.
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
