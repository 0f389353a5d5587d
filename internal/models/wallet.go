package models

import "time"

// Wallet is the wallets row.
type Wallet struct {
	Owner         string    `json:"owner"` // Primary Key
	Lamports      int64     `json:"lamports"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
