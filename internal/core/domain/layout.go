package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
)

const (
	DiscriminatorSize = 8
	lengthPrefixSize  = 4

	// JournalEntrySpace is the fixed size of every journal entry account image:
	// discriminator, owner, length-prefixed title and length-prefixed message,
	// each text field sized for its maximum.
	JournalEntrySpace = DiscriminatorSize + PublicKeySize +
		lengthPrefixSize + MaxTitleLength +
		lengthPrefixSize + MaxMessageLength
)

// JournalEntryDiscriminator tags account images holding a journal entry.
var JournalEntryDiscriminator = accountDiscriminator("JournalEntryState")

func accountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// JournalEntryAccount is the decoded content of an account image.
type JournalEntryAccount struct {
	Owner   PublicKey
	Title   string
	Message string
}

// EncodeJournalEntryAccount writes a full JournalEntrySpace image. Bytes past
// the encoded fields are zero, so an image rewritten with a shorter message
// carries no trace of the previous one.
func EncodeJournalEntryAccount(owner PublicKey, title, message string) ([]byte, error) {
	if err := ValidateJournalEntryInput(title, message); err != nil {
		return nil, err
	}

	buf := make([]byte, JournalEntrySpace)
	off := copy(buf, JournalEntryDiscriminator[:])
	off += copy(buf[off:], owner[:])
	off = putString(buf, off, title)
	putString(buf, off, message)
	return buf, nil
}

func putString(buf []byte, off int, s string) int {
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(s)))
	off += lengthPrefixSize
	return off + copy(buf[off:], s)
}

// DecodeJournalEntryAccount parses an account image produced by EncodeJournalEntryAccount.
func DecodeJournalEntryAccount(data []byte) (JournalEntryAccount, error) {
	var acc JournalEntryAccount
	if len(data) < JournalEntrySpace {
		return acc, fmt.Errorf("%w: account data is %d bytes, want %d", apperrors.ErrValidation, len(data), JournalEntrySpace)
	}
	if !bytes.Equal(data[:DiscriminatorSize], JournalEntryDiscriminator[:]) {
		return acc, fmt.Errorf("%w: account discriminator mismatch", apperrors.ErrValidation)
	}
	off := DiscriminatorSize
	off += copy(acc.Owner[:], data[off:off+PublicKeySize])

	title, off, err := readString(data, off, MaxTitleLength)
	if err != nil {
		return acc, fmt.Errorf("title: %w", err)
	}
	message, _, err := readString(data, off, MaxMessageLength)
	if err != nil {
		return acc, fmt.Errorf("message: %w", err)
	}
	acc.Title = title
	acc.Message = message
	return acc, nil
}

func readString(data []byte, off, maxLen int) (string, int, error) {
	if off+lengthPrefixSize > len(data) {
		return "", off, fmt.Errorf("%w: truncated length prefix", apperrors.ErrValidation)
	}
	n := int(binary.LittleEndian.Uint32(data[off:]))
	off += lengthPrefixSize
	if n > maxLen || off+n > len(data) {
		return "", off, fmt.Errorf("%w: length %d exceeds capacity %d", apperrors.ErrValidation, n, maxLen)
	}
	return string(data[off : off+n]), off + n, nil
}
