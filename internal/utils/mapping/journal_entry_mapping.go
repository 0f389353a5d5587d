package mapping

import (
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		Address:     d.Address.String(),
		Owner:       d.Owner.String(),
		Title:       d.Title,
		Message:     d.Message,
		Bump:        int16(d.Bump),
		Lamports:    d.Lamports,
		Data:        d.Data,
		AuditFields: models.AuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
// It fails if a stored key is not valid base58.
func ToDomainJournalEntry(m models.JournalEntry) (domain.JournalEntry, error) {
	address, err := domain.ParseAddress(m.Address)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("stored address %q: %w", m.Address, err)
	}
	owner, err := domain.ParsePublicKey(m.Owner)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("stored owner %q: %w", m.Owner, err)
	}
	return domain.JournalEntry{
		Address:     address,
		Owner:       owner,
		Title:       m.Title,
		Message:     m.Message,
		Bump:        uint8(m.Bump),
		Lamports:    m.Lamports,
		Data:        m.Data,
		AuditFields: domain.AuditFields(m.AuditFields),
	}, nil
}

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		Owner:         d.Owner.String(),
		Lamports:      d.Lamports,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) (domain.Wallet, error) {
	owner, err := domain.ParsePublicKey(m.Owner)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("stored owner %q: %w", m.Owner, err)
	}
	return domain.Wallet{
		Owner:         owner,
		Lamports:      m.Lamports,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}, nil
}
