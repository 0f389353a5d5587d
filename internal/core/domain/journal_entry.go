package domain

const (
	// MaxTitleLength and MaxMessageLength are byte limits, matching the
	// fixed capacity reserved for each field in the account layout.
	MaxTitleLength   = 50
	MaxMessageLength = 280
)

// JournalEntry is the sole record kept by the store. Title is part of the
// address and never changes; only Message is mutable.
type JournalEntry struct {
	Address  Address   `json:"address"`
	Owner    PublicKey `json:"owner"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Bump     uint8     `json:"bump"`
	Lamports int64     `json:"lamports"` // Storage deposit held by the record
	Data     []byte    `json:"data"`     // Fixed-capacity account image, see EncodeJournalEntryAccount
	AuditFields
}

// ValidateTitle checks the title length bounds.
func ValidateTitle(title string) error {
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(title) == 0 {
		return ErrTitleTooShort
	}
	return nil
}

// ValidateMessage checks the message length bounds.
func ValidateMessage(message string) error {
	if len(message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	if len(message) == 0 {
		return ErrMessageTooShort
	}
	return nil
}

// ValidateJournalEntryInput checks both fields. Upper bounds are reported
// before lower bounds: an oversized title wins over an empty message.
func ValidateJournalEntryInput(title, message string) error {
	switch {
	case len(title) > MaxTitleLength:
		return ErrTitleTooLong
	case len(message) > MaxMessageLength:
		return ErrMessageTooLong
	case len(title) == 0:
		return ErrTitleTooShort
	case len(message) == 0:
		return ErrMessageTooShort
	}
	return nil
}
