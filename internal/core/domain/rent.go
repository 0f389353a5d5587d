package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// AccountStorageOverhead is charged on top of the data length of every record.
	AccountStorageOverhead = 128

	DefaultLamportsPerByteYear = 3480
	DefaultExemptionYears      = 2

	lamportsDecimals = 9
)

// Rent prices the storage deposit an owner must fund for a record.
type Rent struct {
	LamportsPerByteYear int64
	ExemptionYears      int64
}

// DefaultRent returns the standard deposit schedule.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionYears:      DefaultExemptionYears,
	}
}

// MinimumBalance is the deposit required to keep dataLen bytes stored.
// A zero schedule disables deposits.
func (r Rent) MinimumBalance(dataLen int) int64 {
	return (AccountStorageOverhead + int64(dataLen)) * r.LamportsPerByteYear * r.ExemptionYears
}

// Validate reports whether the deposit for dataLen bytes is representable
// in lamports.
func (r Rent) Validate(dataLen int) error {
	if r.LamportsPerByteYear < 0 || r.ExemptionYears < 0 {
		return errors.New("rent parameters must not be negative")
	}
	if r.LamportsPerByteYear == 0 || r.ExemptionYears == 0 {
		return nil
	}
	size := AccountStorageOverhead + int64(dataLen)
	if r.LamportsPerByteYear > math.MaxInt64/size/r.ExemptionYears {
		return errors.New("rent parameters overflow the minimum balance")
	}
	return nil
}

// LamportsToSOL converts an integer lamport amount to whole SOL units.
func LamportsToSOL(lamports int64) decimal.Decimal {
	return decimal.New(lamports, -lamportsDecimals)
}
