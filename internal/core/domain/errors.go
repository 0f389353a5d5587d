package domain

import (
	"errors"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
)

// ProgramError is a typed failure of a journal entry operation. It carries a
// stable numeric code and name for clients and unwraps to the apperrors class
// it belongs to, so callers can match either with errors.Is.
type ProgramError struct {
	Code  uint32
	Name  string
	Msg   string
	class error
}

func (e *ProgramError) Error() string { return e.Msg }

// Unwrap returns the error class (apperrors.ErrValidation, apperrors.ErrNotFound, ...).
func (e *ProgramError) Unwrap() error { return e.class }

var (
	ErrTitleTooLong = &ProgramError{
		Code: 6000, Name: "TitleTooLong",
		Msg:   "The provided title should be 50 characters long maximum.",
		class: apperrors.ErrValidation,
	}
	ErrMessageTooLong = &ProgramError{
		Code: 6001, Name: "MessageTooLong",
		Msg:   "The provided message should be 280 characters long maximum.",
		class: apperrors.ErrValidation,
	}
	ErrTitleTooShort = &ProgramError{
		Code: 6002, Name: "TitleTooShort",
		Msg:   "The provided title should be 1 character long minimum.",
		class: apperrors.ErrValidation,
	}
	ErrMessageTooShort = &ProgramError{
		Code: 6003, Name: "MessageTooShort",
		Msg:   "The provided message should be 1 character long minimum.",
		class: apperrors.ErrValidation,
	}

	ErrAlreadyExists = &ProgramError{
		Code: 0, Name: "AlreadyExists",
		Msg:   "A journal entry with this title already exists for the owner.",
		class: apperrors.ErrDuplicate,
	}
	ErrNotFound = &ProgramError{
		Code: 3012, Name: "NotFound",
		Msg:   "No journal entry exists at the derived address.",
		class: apperrors.ErrNotFound,
	}
	ErrOwnerMismatch = &ProgramError{
		Code: 2006, Name: "Unauthorized",
		Msg:   "The signer does not own this journal entry.",
		class: apperrors.ErrForbidden,
	}
	ErrInsufficientFunds = &ProgramError{
		Code: 1, Name: "InsufficientFunds",
		Msg:   "The owner's wallet cannot cover the storage deposit.",
		class: apperrors.ErrInsufficientFunds,
	}
)

// AsProgramError extracts a *ProgramError from err's chain.
func AsProgramError(err error) (*ProgramError, bool) {
	var pe *ProgramError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
