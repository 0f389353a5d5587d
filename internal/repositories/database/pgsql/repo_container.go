package pgsql

import (
	"log/slog"

	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entry_store/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, logger *slog.Logger) portsrepo.RepositoryProvider {
	walletRepo := newPgxWalletRepository(dbPool)
	journalEntryRepo := newPgxJournalEntryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalEntryRepo: journalEntryRepo,
		WalletRepo:       walletRepo,
		Closer:           database.PoolCloser{Pool: dbPool, Logger: logger},
	}
}
