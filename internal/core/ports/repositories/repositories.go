package repositories

import "io"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	JournalEntryRepo JournalEntryRepositoryFacade
	WalletRepo       WalletRepositoryFacade

	// Closer releases the storage backend. It may be nil.
	Closer io.Closer
}

// Close releases the storage backend if it holds resources.
func (p RepositoryProvider) Close() error {
	if p.Closer == nil {
		return nil
	}
	return p.Closer.Close()
}
