// Package memory keeps journal entries and wallets in process memory. It backs
// STORAGE_BACKEND=memory and the service tests.
package memory

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
)

// Store is the shared state behind the memory repositories. A single mutex
// serializes every unit of work, so entry and wallet changes commit together.
type Store struct {
	mu      sync.Mutex
	entries map[domain.Address]domain.JournalEntry
	wallets map[domain.PublicKey]domain.Wallet
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[domain.Address]domain.JournalEntry),
		wallets: make(map[domain.PublicKey]domain.Wallet),
		now:     time.Now,
	}
}

// NewRepositoryProvider wires both memory repositories over one fresh store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		JournalEntryRepo: NewJournalEntryRepository(store),
		WalletRepo:       NewWalletRepository(store),
	}
}

// adjustWallet applies delta to the owner's balance. Callers hold s.mu.
func (s *Store) adjustWallet(owner domain.PublicKey, delta int64) (domain.Wallet, error) {
	now := s.now().UTC()
	wallet, ok := s.wallets[owner]
	if !ok {
		wallet = domain.Wallet{Owner: owner, CreatedAt: now}
	}
	if delta == 0 {
		return wallet, nil
	}
	if delta > 0 && wallet.Lamports > math.MaxInt64-delta {
		return wallet, fmt.Errorf("%w: balance overflow", apperrors.ErrValidation)
	}
	if wallet.Lamports+delta < 0 {
		return wallet, apperrors.ErrInsufficientFunds
	}
	wallet.Lamports += delta
	wallet.LastUpdatedAt = now
	s.wallets[owner] = wallet
	return wallet, nil
}

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Data = append([]byte(nil), e.Data...)
	return e
}
