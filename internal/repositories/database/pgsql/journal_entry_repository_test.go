package pgsql

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entry_store/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProvider connects to PGSQL_TEST_URL and migrates it. Tests are
// skipped when it is unset.
func newTestProvider(t *testing.T) portsrepo.RepositoryProvider {
	t.Helper()
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, database.RunMigrations(url, logger))

	pool, err := database.NewPgxPool(context.Background(), url, logger)
	require.NoError(t, err)
	repos := NewRepositoryProvider(pool, logger)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

// uniqueEntry builds an entry whose owner and address are fresh for every run.
func uniqueEntry(t *testing.T) domain.JournalEntry {
	t.Helper()
	var owner domain.PublicKey
	var address domain.Address
	id := uuid.New()
	copy(owner[:], id[:])
	copy(address[16:], id[:])

	data, err := domain.EncodeJournalEntryAccount(owner, "title", "message")
	require.NoError(t, err)
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.JournalEntry{
		Address:  address,
		Owner:    owner,
		Title:    "title",
		Message:  "message",
		Bump:     253,
		Lamports: 1000,
		Data:     data,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     owner.String(),
			LastUpdatedAt: now,
			LastUpdatedBy: owner.String(),
		},
	}
}

func TestPgxJournalEntryLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := newTestProvider(t)
	entry := uniqueEntry(t)

	err := repos.JournalEntryRepo.CreateJournalEntry(ctx, entry)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	_, err = repos.WalletRepo.CreditWallet(ctx, entry.Owner, 1500)
	require.NoError(t, err)
	require.NoError(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry))
	assert.ErrorIs(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry), apperrors.ErrDuplicate)

	got, err := repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got.Data)
	assert.Equal(t, entry.Bump, got.Bump)

	_, err = repos.JournalEntryRepo.UpdateJournalEntry(ctx, entry.Address, func(cur *domain.JournalEntry) error {
		data, err := domain.EncodeJournalEntryAccount(cur.Owner, cur.Title, "second")
		if err != nil {
			return err
		}
		cur.Message, cur.Data, cur.Lamports = "second", data, 1200
		return nil
	})
	require.NoError(t, err)

	w, err := repos.WalletRepo.FindWallet(ctx, entry.Owner)
	require.NoError(t, err)
	assert.Equal(t, int64(300), w.Lamports)

	refunded, err := repos.JournalEntryRepo.DeleteJournalEntry(ctx, entry.Address, func(*domain.JournalEntry) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(1200), refunded)

	w, err = repos.WalletRepo.FindWallet(ctx, entry.Owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), w.Lamports)

	_, err = repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

