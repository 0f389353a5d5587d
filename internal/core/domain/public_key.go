package domain

import (
	"crypto/ed25519"
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/mr-tron/base58"
)

// PublicKeySize is the length in bytes of an owner identity and of a derived address.
const PublicKeySize = 32

// PublicKey is an ed25519 public key identifying the owner of journal entries.
// Its text form is base58.
type PublicKey [PublicKeySize]byte

// Address is the storage location of a journal entry, derived from (title, owner).
type Address [PublicKeySize]byte

// ParsePublicKey decodes a base58 public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	if err := decodeKey(s, pk[:]); err != nil {
		return pk, fmt.Errorf("%w: invalid public key %q: %v", apperrors.ErrValidation, s, err)
	}
	return pk, nil
}

// ParseAddress decodes a base58 address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := decodeKey(s, a[:]); err != nil {
		return a, fmt.Errorf("%w: invalid address %q: %v", apperrors.ErrValidation, s, err)
	}
	return a, nil
}

func decodeKey(s string, dst []byte) error {
	if s == "" {
		return fmt.Errorf("empty value")
	}
	b, err := base58.Decode(s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("decoded length %d, want %d", len(b), len(dst))
	}
	copy(dst, b)
	return nil
}

func (k PublicKey) String() string { return base58.Encode(k[:]) }

// IsZero reports whether k is the all-zero key.
func (k PublicKey) IsZero() bool { return k == PublicKey{} }

// Verify reports whether sig is a valid ed25519 signature of message by k.
func (k PublicKey) Verify(message, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(k[:]), message, sig)
}

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	pk, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

func (a Address) String() string { return base58.Encode(a[:]) }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// PublicKeyFromEd25519 converts a standard library ed25519 key.
func PublicKeyFromEd25519(pub ed25519.PublicKey) (PublicKey, error) {
	var pk PublicKey
	if len(pub) != PublicKeySize {
		return pk, fmt.Errorf("%w: ed25519 public key has %d bytes", apperrors.ErrValidation, len(pub))
	}
	copy(pk[:], pub)
	return pk, nil
}
