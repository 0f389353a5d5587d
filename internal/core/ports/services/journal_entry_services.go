package services

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries
type JournalEntryReaderSvc interface {
	// GetJournalEntry retrieves the entry owned by owner with the given title.
	GetJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (*domain.JournalEntry, error)

	// GetJournalEntryByAddress retrieves the entry stored at address.
	GetJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error)

	// DeriveAddress returns the storage address and bump for (title, owner).
	DeriveAddress(owner domain.PublicKey, title string) (domain.Address, uint8, error)
}

// JournalEntryWriterSvc defines write operations for journal entries.
// owner is the authenticated signing identity.
type JournalEntryWriterSvc interface {
	// CreateJournalEntry creates a new entry funded by owner.
	CreateJournalEntry(ctx context.Context, owner domain.PublicKey, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// UpdateJournalEntry replaces the message of an existing entry.
	UpdateJournalEntry(ctx context.Context, owner domain.PublicKey, title string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes an entry and returns the deposit refunded to owner.
	DeleteJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (domain.Address, int64, error)
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}
