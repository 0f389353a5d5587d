package dto

import "time"

// LoginRequest proves control of an owner key by signing a login challenge.
// Signature is the base58 ed25519 signature of "journal-login:<owner>:<timestamp>".
type LoginRequest struct {
	Owner     string `json:"owner" binding:"required,pubkey"`
	Timestamp int64  `json:"timestamp" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorResponse is the body of every failed request. Code and Name are set for
// journal entry failures.
type ErrorResponse struct {
	Error string  `json:"error"`
	Code  *uint32 `json:"code,omitempty"`
	Name  string  `json:"name,omitempty"`
}
