package domain

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"
)

// pdaMarker is appended to every derivation preimage so derived addresses
// never collide with hashes produced for other purposes.
const pdaMarker = "ProgramDerivedAddress"

// DefaultProgramID namespaces derived addresses when no program key is configured.
const DefaultProgramID = "coUnmi3oBUtwtd9fjeAvSsJssXh5A5xyPbhpewyzRVF"

var (
	// ErrAddressOnCurve is returned by CreateProgramAddress when the hash is a
	// valid ed25519 point, i.e. someone could hold a private key for it.
	ErrAddressOnCurve = errors.New("derived address lies on the ed25519 curve")

	// ErrNoViableBump is returned when no bump seed in [0,255] yields an off-curve address.
	ErrNoViableBump = errors.New("unable to find a viable bump seed")
)

// CreateProgramAddress hashes seeds with programID into an address that has no private key.
func CreateProgramAddress(seeds [][]byte, programID PublicKey) (Address, error) {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var addr Address
	copy(addr[:], h.Sum(nil))
	if isOnCurve(addr[:]) {
		return Address{}, ErrAddressOnCurve
	}
	return addr, nil
}

// FindProgramAddress searches bump seeds from 255 downwards and returns the
// first off-curve address together with the bump that produced it.
func FindProgramAddress(seeds [][]byte, programID PublicKey) (Address, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := []byte{0}
	withBump[len(seeds)] = bump

	for b := 255; b >= 0; b-- {
		bump[0] = byte(b)
		addr, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return addr, uint8(b), nil
		}
	}
	return Address{}, 0, ErrNoViableBump
}

// JournalEntryAddress derives the storage address for (title, owner).
// The same owner and title always map to the same address; this is what
// keeps titles unique per owner.
func JournalEntryAddress(title string, owner PublicKey, programID PublicKey) (Address, uint8, error) {
	return FindProgramAddress([][]byte{[]byte(title), owner[:]}, programID)
}

func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
