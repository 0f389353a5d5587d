package dto

import (
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AirdropRequest asks for development funds to be credited to the caller's wallet.
type AirdropRequest struct {
	Lamports int64 `json:"lamports" binding:"required,gt=0" example:"10000000"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	Owner         string          `json:"owner"`
	Lamports      int64           `json:"lamports"`
	SOL           decimal.Decimal `json:"sol"`
	LastUpdatedAt *time.Time      `json:"lastUpdatedAt,omitempty"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	resp := WalletResponse{
		Owner:    w.Owner.String(),
		Lamports: w.Lamports,
		SOL:      domain.LamportsToSOL(w.Lamports),
	}
	if !w.LastUpdatedAt.IsZero() {
		t := w.LastUpdatedAt
		resp.LastUpdatedAt = &t
	}
	return resp
}
