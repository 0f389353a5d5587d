package services

import (
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	programID, err := domain.ParsePublicKey(cfg.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.JournalEntry = NewJournalEntryService(
		repos.JournalEntryRepo,
		WithProgramID(programID),
		WithRent(domain.Rent{
			LamportsPerByteYear: cfg.RentLamportsPerByte,
			ExemptionYears:      cfg.RentExemptionYears,
		}),
	)

	container.Wallet = NewWalletService(
		repos.WalletRepo,
		WithAirdrop(cfg.EnableAirdrop, cfg.AirdropMaxLamports),
	)

	container.Auth = NewAuthService(cfg)

	return container, nil
}
