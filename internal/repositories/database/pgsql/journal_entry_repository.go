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

const journalEntryColumns = `address, owner, title, message, bump, lamports, data,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entry data.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

func scanJournalEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.Address,
		&m.Owner,
		&m.Title,
		&m.Message,
		&m.Bump,
		&m.Lamports,
		&m.Data,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	entry, err := mapping.ToDomainJournalEntry(m)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindJournalEntryByAddress retrieves the entry stored at address.
func (r *PgxJournalEntryRepository) FindJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE address = $1;`
	entry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, address.String()))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", address, err)
	}
	return entry, nil
}

// lockJournalEntry reads the entry at address and holds a row lock until tx ends.
func lockJournalEntry(ctx context.Context, tx pgx.Tx, address domain.Address) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE address = $1 FOR UPDATE;`
	entry, err := scanJournalEntry(tx.QueryRow(ctx, query, address.String()))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock journal entry %s: %w", address, err)
	}
	return entry, nil
}

// CreateJournalEntry inserts the entry and debits its deposit in one transaction.
// The insert runs first, so an occupied address is reported before an empty wallet.
func (r *PgxJournalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO journal_entries (` + journalEntryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
		_, err := tx.Exec(ctx, query,
			m.Address,
			m.Owner,
			m.Title,
			m.Message,
			m.Bump,
			m.Lamports,
			m.Data,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrDuplicate
			}
			return fmt.Errorf("failed to insert journal entry %s: %w", m.Address, err)
		}

		return debitWallet(ctx, tx, entry.Owner, entry.Lamports, time.Now().UTC())
	})
}

// UpdateJournalEntry locks the row, applies mutate and settles any deposit change.
func (r *PgxJournalEntryRepository) UpdateJournalEntry(ctx context.Context, address domain.Address, mutate portsrepo.JournalEntryMutator) (*domain.JournalEntry, error) {
	var updated *domain.JournalEntry

	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		current, err := lockJournalEntry(ctx, tx, address)
		if err != nil {
			return err
		}

		next := *current
		if err := mutate(&next); err != nil {
			return err
		}
		next.Address, next.Owner, next.Title = current.Address, current.Owner, current.Title
		m := mapping.ToModelJournalEntry(next)

		_, err = tx.Exec(ctx, `
			UPDATE journal_entries
			SET message = $2, data = $3, lamports = $4, last_updated_at = $5, last_updated_by = $6
			WHERE address = $1;
		`, m.Address, m.Message, m.Data, m.Lamports, m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to update journal entry %s: %w", m.Address, err)
		}

		now := time.Now().UTC()
		switch delta := next.Lamports - current.Lamports; {
		case delta > 0:
			err = debitWallet(ctx, tx, current.Owner, delta, now)
		case delta < 0:
			err = creditWallet(ctx, tx, current.Owner, -delta, now)
		}
		if err != nil {
			return err
		}

		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteJournalEntry locks the row, runs check, removes it and refunds the deposit.
func (r *PgxJournalEntryRepository) DeleteJournalEntry(ctx context.Context, address domain.Address, check portsrepo.JournalEntryMutator) (int64, error) {
	var refunded int64

	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		current, err := lockJournalEntry(ctx, tx, address)
		if err != nil {
			return err
		}
		view := *current
		if err := check(&view); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE address = $1;`, address.String()); err != nil {
			return fmt.Errorf("failed to delete journal entry %s: %w", address, err)
		}
		if err := creditWallet(ctx, tx, current.Owner, current.Lamports, time.Now().UTC()); err != nil {
			return err
		}

		refunded = current.Lamports
		return nil
	})
	if err != nil {
		return 0, err
	}
	return refunded, nil
}
