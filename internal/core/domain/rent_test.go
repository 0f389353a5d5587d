package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRent_Validate(t *testing.T) {
	size := int64(domain.AccountStorageOverhead + domain.JournalEntrySpace)
	largest := math.MaxInt64 / size / 2

	testCases := []struct {
		name    string
		rent    domain.Rent
		wantErr bool
	}{
		{"default schedule", domain.DefaultRent(), false},
		{"zero schedule", domain.Rent{}, false},
		{"zero years with huge price", domain.Rent{LamportsPerByteYear: math.MaxInt64}, false},
		{"largest representable price", domain.Rent{LamportsPerByteYear: largest, ExemptionYears: 2}, false},
		{"one past largest price", domain.Rent{LamportsPerByteYear: largest + 1, ExemptionYears: 2}, true},
		{"max price", domain.Rent{LamportsPerByteYear: math.MaxInt64, ExemptionYears: 1}, true},
		{"huge exemption", domain.Rent{LamportsPerByteYear: 3480, ExemptionYears: math.MaxInt64 / 1000}, true},
		{"negative price", domain.Rent{LamportsPerByteYear: -1, ExemptionYears: 2}, true},
		{"negative years", domain.Rent{LamportsPerByteYear: 1, ExemptionYears: -2}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rent.Validate(domain.JournalEntrySpace)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, tc.rent.MinimumBalance(domain.JournalEntrySpace), int64(0))
		})
	}
}
