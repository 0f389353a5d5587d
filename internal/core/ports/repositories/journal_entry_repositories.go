package repositories

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
)

// JournalEntryMutator is applied to a locked copy of a stored entry. Returning
// an error aborts the surrounding unit of work with no state change.
type JournalEntryMutator func(current *domain.JournalEntry) error

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindJournalEntryByAddress retrieves the entry stored at address.
	// Returns apperrors.ErrNotFound if the address is empty.
	FindJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entry data.
// Each method is a single atomic unit of work covering both the entry and the
// owner's wallet.
type JournalEntryWriter interface {
	// CreateJournalEntry stores a new entry and debits entry.Lamports from the
	// owner's wallet. Returns apperrors.ErrDuplicate if the address is occupied
	// and apperrors.ErrInsufficientFunds if the wallet cannot pay.
	CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntry locks the entry at address, applies mutate and persists
	// the result. Any increase of Lamports is debited from the owner's wallet and
	// any decrease credited back. Returns apperrors.ErrNotFound if absent.
	UpdateJournalEntry(ctx context.Context, address domain.Address, mutate JournalEntryMutator) (*domain.JournalEntry, error)

	// DeleteJournalEntry locks the entry at address, runs check, removes the
	// entry and credits its lamports to the owner's wallet. Returns the refunded
	// amount, or apperrors.ErrNotFound if absent.
	DeleteJournalEntry(ctx context.Context, address domain.Address, check JournalEntryMutator) (int64, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
