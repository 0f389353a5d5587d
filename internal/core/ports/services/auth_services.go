package services

import (
	"context"

	"github.com/SscSPs/journal_entry_store/internal/dto"
)

// AuthSvcFacade issues session tokens to owners who prove key possession.
type AuthSvcFacade interface {
	// Login verifies a signed login challenge and returns a session token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
