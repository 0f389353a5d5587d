package pebblestore

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := Open(Options{
		DataDir:       dir,
		Fsync:         FsyncModeInterval,
		FsyncInterval: 2 * time.Millisecond,
	})
	require.NoError(t, err)
	return db
}

func sampleEntry(t *testing.T) domain.JournalEntry {
	t.Helper()
	owner := domain.PublicKey{7}
	data, err := domain.EncodeJournalEntryAccount(owner, "title", "message")
	require.NoError(t, err)
	return domain.JournalEntry{
		Address:  domain.Address{1, 2, 3},
		Owner:    owner,
		Title:    "title",
		Message:  "message",
		Bump:     254,
		Lamports: 500,
		Data:     data,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			CreatedBy:     owner.String(),
			LastUpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			LastUpdatedBy: owner.String(),
		},
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	entry := sampleEntry(t)

	db := newTestDB(t, dir)
	repos := NewRepositoryProvider(db)
	_, err := repos.WalletRepo.CreditWallet(ctx, entry.Owner, 800)
	require.NoError(t, err)
	require.NoError(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry))
	require.NoError(t, repos.Close())

	db = newTestDB(t, dir)
	t.Cleanup(func() { _ = db.Close() })
	repos = NewRepositoryProvider(db)

	got, err := repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	require.NoError(t, err)
	assert.Equal(t, entry.Owner, got.Owner)
	assert.Equal(t, entry.Message, got.Message)
	assert.Equal(t, entry.Bump, got.Bump)
	assert.Equal(t, entry.Data, got.Data)
	assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))

	w, err := repos.WalletRepo.FindWallet(ctx, entry.Owner)
	require.NoError(t, err)
	assert.Equal(t, int64(300), w.Lamports)
}

func TestCreateRejectsDuplicateAndUnfunded(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, t.TempDir())
	t.Cleanup(func() { _ = db.Close() })
	repos := NewRepositoryProvider(db)
	entry := sampleEntry(t)

	err := repos.JournalEntryRepo.CreateJournalEntry(ctx, entry)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	_, err = repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repos.WalletRepo.CreditWallet(ctx, entry.Owner, 500)
	require.NoError(t, err)
	require.NoError(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry))

	err = repos.JournalEntryRepo.CreateJournalEntry(ctx, entry)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUpdateAndDeleteSettleWallet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, t.TempDir())
	t.Cleanup(func() { _ = db.Close() })
	repos := NewRepositoryProvider(db)
	entry := sampleEntry(t)

	_, err := repos.WalletRepo.CreditWallet(ctx, entry.Owner, 600)
	require.NoError(t, err)
	require.NoError(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry))

	updated, err := repos.JournalEntryRepo.UpdateJournalEntry(ctx, entry.Address, func(cur *domain.JournalEntry) error {
		cur.Message = "rewritten"
		cur.Lamports = 550
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", updated.Message)

	w, err := repos.WalletRepo.FindWallet(ctx, entry.Owner)
	require.NoError(t, err)
	assert.Equal(t, int64(50), w.Lamports)

	refunded, err := repos.JournalEntryRepo.DeleteJournalEntry(ctx, entry.Address, func(*domain.JournalEntry) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(550), refunded)

	w, err = repos.WalletRepo.FindWallet(ctx, entry.Owner)
	require.NoError(t, err)
	assert.Equal(t, int64(600), w.Lamports)

	_, err = repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteCheckErrorKeepsEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t, t.TempDir())
	t.Cleanup(func() { _ = db.Close() })
	repos := NewRepositoryProvider(db)
	entry := sampleEntry(t)
	entry.Lamports = 0
	require.NoError(t, repos.JournalEntryRepo.CreateJournalEntry(ctx, entry))

	_, err := repos.JournalEntryRepo.DeleteJournalEntry(ctx, entry.Address, func(*domain.JournalEntry) error {
		return domain.ErrOwnerMismatch
	})
	assert.ErrorIs(t, err, domain.ErrOwnerMismatch)

	_, err = repos.JournalEntryRepo.FindJournalEntryByAddress(ctx, entry.Address)
	assert.NoError(t, err)
}

func TestParseFsyncMode(t *testing.T) {
	for in, want := range map[string]FsyncMode{
		"":         FsyncModeAlways,
		"always":   FsyncModeAlways,
		"Interval": FsyncModeInterval,
		"never":    FsyncModeNever,
	} {
		got, err := ParseFsyncMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFsyncMode("sometimes")
	assert.Error(t, err)
}

