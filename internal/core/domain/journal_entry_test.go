package domain_test

import (
	"crypto/ed25519"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, seedByte byte) (domain.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pk, err := domain.PublicKeyFromEd25519(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return pk, priv
}

func TestValidateJournalEntryInput(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		message string
		wantErr error
	}{
		{name: "valid minimal", title: "a", message: "b"},
		{name: "valid maximal", title: strings.Repeat("t", 50), message: strings.Repeat("m", 280)},
		{name: "title too long", title: strings.Repeat("t", 51), message: "m", wantErr: domain.ErrTitleTooLong},
		{name: "title too short", title: "", message: "m", wantErr: domain.ErrTitleTooShort},
		{name: "message too long", title: "t", message: strings.Repeat("m", 281), wantErr: domain.ErrMessageTooLong},
		{name: "message too short", title: "t", message: "", wantErr: domain.ErrMessageTooShort},
		{name: "long title reported before empty message", title: strings.Repeat("t", 51), message: "", wantErr: domain.ErrTitleTooLong},
		{name: "long message reported before empty title", title: "", message: strings.Repeat("m", 281), wantErr: domain.ErrMessageTooLong},
		{name: "multi-byte title counted in bytes", title: strings.Repeat("é", 26), message: "m", wantErr: domain.ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateJournalEntryInput(tt.title, tt.message)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestValidateTitleAndMessage(t *testing.T) {
	assert.NoError(t, domain.ValidateTitle("groceries"))
	assert.ErrorIs(t, domain.ValidateTitle(""), domain.ErrTitleTooShort)
	assert.ErrorIs(t, domain.ValidateTitle(strings.Repeat("x", 51)), domain.ErrTitleTooLong)

	assert.NoError(t, domain.ValidateMessage("bought milk"))
	assert.ErrorIs(t, domain.ValidateMessage(""), domain.ErrMessageTooShort)
	assert.ErrorIs(t, domain.ValidateMessage(strings.Repeat("x", 281)), domain.ErrMessageTooLong)
}

func TestProgramErrorCodes(t *testing.T) {
	pe, ok := domain.AsProgramError(errors.Join(errors.New("context"), domain.ErrMessageTooLong))
	require.True(t, ok)
	assert.Equal(t, uint32(6001), pe.Code)
	assert.Equal(t, "MessageTooLong", pe.Name)

	assert.ErrorIs(t, domain.ErrNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, domain.ErrAlreadyExists, apperrors.ErrDuplicate)
	assert.ErrorIs(t, domain.ErrOwnerMismatch, apperrors.ErrForbidden)
	assert.ErrorIs(t, domain.ErrInsufficientFunds, apperrors.ErrInsufficientFunds)

	_, ok = domain.AsProgramError(apperrors.ErrNotFound)
	assert.False(t, ok)
}

func TestPublicKey_TextRoundTrip(t *testing.T) {
	pk, _ := testKey(t, 7)

	parsed, err := domain.ParsePublicKey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)

	text, err := pk.MarshalText()
	require.NoError(t, err)
	var back domain.PublicKey
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, pk, back)

	_, err = domain.ParsePublicKey("not-base58-0OIl")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = domain.ParsePublicKey("")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = domain.ParsePublicKey("3yZe7d")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPublicKey_Verify(t *testing.T) {
	pk, priv := testKey(t, 3)
	msg := []byte("hello")
	sig := ed25519.Sign(priv, msg)

	assert.True(t, pk.Verify(msg, sig))
	assert.False(t, pk.Verify([]byte("tampered"), sig))
	assert.False(t, pk.Verify(msg, sig[:10]))

	other, _ := testKey(t, 4)
	assert.False(t, other.Verify(msg, sig))
}
