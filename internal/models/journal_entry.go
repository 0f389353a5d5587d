package models

// JournalEntry is the journal_entries row. Keys are stored as base58 text.
type JournalEntry struct {
	Address  string `json:"address"` // Primary Key
	Owner    string `json:"owner"`   // Unique together with Title
	Title    string `json:"title"`
	Message  string `json:"message"`
	Bump     int16  `json:"bump"`     // SMALLINT, 0..255
	Lamports int64  `json:"lamports"` // Storage deposit held by the entry
	Data     []byte `json:"data"`     // BYTEA, always 378 bytes
	AuditFields
}
