package pebblestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	"github.com/cockroachdb/pebble"
)

// Keys are a namespace prefix followed by the raw 32-byte key.
var (
	entryPrefix  = []byte("je/")
	walletPrefix = []byte("w/")
)

func entryKey(a domain.Address) []byte {
	return append(append([]byte(nil), entryPrefix...), a[:]...)
}

func walletKey(owner domain.PublicKey) []byte {
	return append(append([]byte(nil), walletPrefix...), owner[:]...)
}

// NewRepositoryProvider wires both Pebble repositories over db.
func NewRepositoryProvider(db *DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalEntryRepo: NewJournalEntryRepository(db),
		WalletRepo:       NewWalletRepository(db),
		Closer:           db,
	}
}

type journalEntryRepository struct {
	db  *DB
	now func() time.Time
}

// NewJournalEntryRepository creates a journal entry repository over db.
func NewJournalEntryRepository(db *DB) portsrepo.JournalEntryRepositoryFacade {
	return &journalEntryRepository{db: db, now: time.Now}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*journalEntryRepository)(nil)

func (r *journalEntryRepository) FindJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error) {
	return r.load(address)
}

func (r *journalEntryRepository) load(address domain.Address) (*domain.JournalEntry, error) {
	raw, err := r.db.get(entryKey(address))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read journal entry %s: %w", address, err)
	}
	var entry domain.JournalEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode journal entry %s: %w", address, err)
	}
	return &entry, nil
}

func (r *journalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.db.update(ctx, func(b *pebble.Batch) error {
		if _, err := r.load(entry.Address); err == nil {
			return apperrors.ErrDuplicate
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if _, err := adjustWallet(r.db, b, entry.Owner, -entry.Lamports, r.now().UTC()); err != nil {
			return err
		}
		return putEntry(b, &entry)
	})
}

func (r *journalEntryRepository) UpdateJournalEntry(ctx context.Context, address domain.Address, mutate portsrepo.JournalEntryMutator) (*domain.JournalEntry, error) {
	var updated *domain.JournalEntry
	err := r.db.update(ctx, func(b *pebble.Batch) error {
		current, err := r.load(address)
		if err != nil {
			return err
		}
		next := *current
		if err := mutate(&next); err != nil {
			return err
		}
		next.Address, next.Owner, next.Title = current.Address, current.Owner, current.Title

		if _, err := adjustWallet(r.db, b, current.Owner, current.Lamports-next.Lamports, r.now().UTC()); err != nil {
			return err
		}
		updated = &next
		return putEntry(b, &next)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *journalEntryRepository) DeleteJournalEntry(ctx context.Context, address domain.Address, check portsrepo.JournalEntryMutator) (int64, error) {
	var refunded int64
	err := r.db.update(ctx, func(b *pebble.Batch) error {
		current, err := r.load(address)
		if err != nil {
			return err
		}
		view := *current
		if err := check(&view); err != nil {
			return err
		}
		if _, err := adjustWallet(r.db, b, current.Owner, current.Lamports, r.now().UTC()); err != nil {
			return err
		}
		refunded = current.Lamports
		return b.Delete(entryKey(address), nil)
	})
	if err != nil {
		return 0, err
	}
	return refunded, nil
}

func putEntry(b *pebble.Batch, entry *domain.JournalEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}
	return b.Set(entryKey(entry.Address), raw, nil)
}

// adjustWallet stages a balance change in b and returns the resulting wallet.
// Callers hold the writer lock.
func adjustWallet(db *DB, b *pebble.Batch, owner domain.PublicKey, delta int64, now time.Time) (*domain.Wallet, error) {
	wallet, err := loadWallet(db, owner)
	if errors.Is(err, apperrors.ErrNotFound) {
		wallet = &domain.Wallet{Owner: owner, CreatedAt: now}
	} else if err != nil {
		return nil, err
	}
	if delta == 0 {
		return wallet, nil
	}
	if delta > 0 && wallet.Lamports > math.MaxInt64-delta {
		return nil, fmt.Errorf("%w: balance overflow", apperrors.ErrValidation)
	}
	if wallet.Lamports+delta < 0 {
		return nil, apperrors.ErrInsufficientFunds
	}
	wallet.Lamports += delta
	wallet.LastUpdatedAt = now

	raw, err := json.Marshal(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to encode wallet: %w", err)
	}
	return wallet, b.Set(walletKey(owner), raw, nil)
}

func loadWallet(db *DB, owner domain.PublicKey) (*domain.Wallet, error) {
	raw, err := db.get(walletKey(owner))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read wallet %s: %w", owner, err)
	}
	var wallet domain.Wallet
	if err := json.Unmarshal(raw, &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode wallet %s: %w", owner, err)
	}
	return &wallet, nil
}
