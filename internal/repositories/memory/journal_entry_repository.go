package memory

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
)

type journalEntryRepository struct {
	store *Store
}

// NewJournalEntryRepository creates a journal entry repository over store.
func NewJournalEntryRepository(store *Store) portsrepo.JournalEntryRepositoryFacade {
	return &journalEntryRepository{store: store}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*journalEntryRepository)(nil)

func (r *journalEntryRepository) FindJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.entries[address]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneEntry(entry)
	return &out, nil
}

func (r *journalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.entries[entry.Address]; exists {
		return apperrors.ErrDuplicate
	}
	if _, err := r.store.adjustWallet(entry.Owner, -entry.Lamports); err != nil {
		return err
	}
	r.store.entries[entry.Address] = cloneEntry(entry)
	return nil
}

func (r *journalEntryRepository) UpdateJournalEntry(ctx context.Context, address domain.Address, mutate portsrepo.JournalEntryMutator) (*domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.entries[address]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	next := cloneEntry(current)
	if err := mutate(&next); err != nil {
		return nil, err
	}
	next.Address, next.Owner, next.Title = current.Address, current.Owner, current.Title

	if _, err := r.store.adjustWallet(current.Owner, current.Lamports-next.Lamports); err != nil {
		return nil, err
	}
	r.store.entries[address] = cloneEntry(next)
	return &next, nil
}

func (r *journalEntryRepository) DeleteJournalEntry(ctx context.Context, address domain.Address, check portsrepo.JournalEntryMutator) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.entries[address]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	view := cloneEntry(current)
	if err := check(&view); err != nil {
		return 0, err
	}

	if _, err := r.store.adjustWallet(current.Owner, current.Lamports); err != nil {
		return 0, err
	}
	delete(r.store.entries, address)
	return current.Lamports, nil
}
