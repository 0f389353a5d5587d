package domain

import "time"

// Wallet holds the spendable balance an owner uses to fund record deposits.
type Wallet struct {
	Owner         PublicKey `json:"owner"`
	Lamports      int64     `json:"lamports"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
