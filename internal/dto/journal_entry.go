package dto

import (
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest defines the data needed to create a journal entry.
// Lengths are checked by the service so each violation gets its own error code.
type CreateJournalEntryRequest struct {
	Title   string `json:"title" example:"Morning pages"`
	Message string `json:"message" example:"Slept well, wrote three pages."`
}

// UpdateJournalEntryRequest defines the data needed to replace an entry's message.
type UpdateJournalEntryRequest struct {
	Message string `json:"message" example:"Slept badly, wrote one page."`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	Address       string          `json:"address"`
	Owner         string          `json:"owner"`
	Title         string          `json:"title"`
	Message       string          `json:"message"`
	Bump          uint8           `json:"bump"`
	Lamports      int64           `json:"lamports"`
	DepositSOL    decimal.Decimal `json:"depositSol"`
	Space         int             `json:"space"`
	Data          []byte          `json:"data"` // base64 in JSON
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// DeleteJournalEntryResponse reports the deposit returned to the owner.
type DeleteJournalEntryResponse struct {
	Address          string          `json:"address"`
	RefundedLamports int64           `json:"refundedLamports"`
	RefundedSOL      decimal.Decimal `json:"refundedSol"`
}

// DerivedAddressResponse is the storage location of a (title, owner) pair.
type DerivedAddressResponse struct {
	Address string `json:"address"`
	Bump    uint8  `json:"bump"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		Address:       e.Address.String(),
		Owner:         e.Owner.String(),
		Title:         e.Title,
		Message:       e.Message,
		Bump:          e.Bump,
		Lamports:      e.Lamports,
		DepositSOL:    domain.LamportsToSOL(e.Lamports),
		Space:         len(e.Data),
		Data:          e.Data,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToDeleteJournalEntryResponse builds the delete response.
func ToDeleteJournalEntryResponse(address domain.Address, refunded int64) DeleteJournalEntryResponse {
	return DeleteJournalEntryResponse{
		Address:          address.String(),
		RefundedLamports: refunded,
		RefundedSOL:      domain.LamportsToSOL(refunded),
	}
}
