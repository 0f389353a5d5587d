package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/apperrors"
	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/dto"
)

// journalEntryService implements the JournalEntrySvcFacade interface
type journalEntryService struct {
	BaseService
	journalEntryRepo portsrepo.JournalEntryRepositoryFacade
	programID        domain.PublicKey
	rent             domain.Rent
	now              func() time.Time
}

// JournalEntryServiceOption is a functional option for configuring the journal entry service
type JournalEntryServiceOption func(*journalEntryService)

// WithProgramID sets the program key that namespaces derived addresses.
func WithProgramID(programID domain.PublicKey) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.programID = programID
	}
}

// WithRent sets the deposit schedule charged for new entries.
func WithRent(rent domain.Rent) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.rent = rent
	}
}

// WithClock replaces the time source used for audit fields.
func WithClock(now func() time.Time) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.now = now
	}
}

// NewJournalEntryService creates a new journal entry service with the provided options
func NewJournalEntryService(repo portsrepo.JournalEntryRepositoryFacade, options ...JournalEntryServiceOption) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		journalEntryRepo: repo,
		rent:             domain.DefaultRent(),
		now:              time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	if svc.programID.IsZero() {
		// the default id always parses
		svc.programID, _ = domain.ParsePublicKey(domain.DefaultProgramID)
	}

	return svc
}

// Ensure journalEntryService implements the JournalEntrySvcFacade interface
var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) DeriveAddress(owner domain.PublicKey, title string) (domain.Address, uint8, error) {
	address, bump, err := domain.JournalEntryAddress(title, owner, s.programID)
	if err != nil {
		return domain.Address{}, 0, fmt.Errorf("failed to derive journal entry address: %w", err)
	}
	return address, bump, nil
}

func (s *journalEntryService) CreateJournalEntry(ctx context.Context, owner domain.PublicKey, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := domain.ValidateJournalEntryInput(req.Title, req.Message); err != nil {
		s.LogWarn(ctx, err, "Rejected journal entry input",
			slog.Int("title_len", len(req.Title)),
			slog.Int("message_len", len(req.Message)))
		return nil, err
	}

	address, bump, err := s.DeriveAddress(owner, req.Title)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive journal entry address", slog.String("title", req.Title))
		return nil, err
	}

	data, err := domain.EncodeJournalEntryAccount(owner, req.Title, req.Message)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := domain.JournalEntry{
		Address:  address,
		Owner:    owner,
		Title:    req.Title,
		Message:  req.Message,
		Bump:     bump,
		Lamports: s.rent.MinimumBalance(len(data)),
		Data:     data,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     owner.String(),
			LastUpdatedAt: now,
			LastUpdatedBy: owner.String(),
		},
	}

	if err := s.journalEntryRepo.CreateJournalEntry(ctx, entry); err != nil {
		if pe := toProgramError(err); pe != nil {
			s.LogWarn(ctx, pe, "Journal entry creation rejected",
				slog.String("address", address.String()),
				slog.String("title", req.Title))
			return nil, pe
		}
		s.LogError(ctx, err, "Failed to create journal entry", slog.String("address", address.String()))
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("address", address.String()),
		slog.String("title", entry.Title),
		slog.Int64("lamports", entry.Lamports))
	return &entry, nil
}

func (s *journalEntryService) UpdateJournalEntry(ctx context.Context, owner domain.PublicKey, title string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := domain.ValidateJournalEntryInput(title, req.Message); err != nil {
		s.LogWarn(ctx, err, "Rejected journal entry input",
			slog.Int("title_len", len(title)),
			slog.Int("message_len", len(req.Message)))
		return nil, err
	}

	address, _, err := s.DeriveAddress(owner, title)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive journal entry address", slog.String("title", title))
		return nil, err
	}

	updated, err := s.journalEntryRepo.UpdateJournalEntry(ctx, address, func(current *domain.JournalEntry) error {
		if err := s.AuthorizeOwner(ctx, owner, current); err != nil {
			return err
		}
		data, err := domain.EncodeJournalEntryAccount(current.Owner, current.Title, req.Message)
		if err != nil {
			return err
		}
		current.Message = req.Message
		current.Data = data
		current.Lamports = s.rent.MinimumBalance(len(data))
		current.LastUpdatedAt = s.now().UTC()
		current.LastUpdatedBy = owner.String()
		return nil
	})
	if err != nil {
		if pe := toProgramError(err); pe != nil {
			s.LogWarn(ctx, pe, "Journal entry update rejected",
				slog.String("address", address.String()),
				slog.String("title", title))
			return nil, pe
		}
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("address", address.String()))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry updated",
		slog.String("address", address.String()),
		slog.String("title", title))
	return updated, nil
}

func (s *journalEntryService) DeleteJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (domain.Address, int64, error) {
	// No entry can exist under a title longer than the create limit.
	if len(title) > domain.MaxTitleLength {
		s.LogDebug(ctx, "Journal entry not found", slog.Int("title_len", len(title)))
		return domain.Address{}, 0, domain.ErrNotFound
	}

	address, _, err := s.DeriveAddress(owner, title)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive journal entry address", slog.String("title", title))
		return domain.Address{}, 0, err
	}

	refunded, err := s.journalEntryRepo.DeleteJournalEntry(ctx, address, func(current *domain.JournalEntry) error {
		return s.AuthorizeOwner(ctx, owner, current)
	})
	if err != nil {
		if pe := toProgramError(err); pe != nil {
			s.LogWarn(ctx, pe, "Journal entry deletion rejected",
				slog.String("address", address.String()),
				slog.String("title", title))
			return domain.Address{}, 0, pe
		}
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("address", address.String()))
		return domain.Address{}, 0, fmt.Errorf("failed to delete journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry deleted",
		slog.String("address", address.String()),
		slog.String("title", title),
		slog.Int64("refunded_lamports", refunded))
	return address, refunded, nil
}

func (s *journalEntryService) GetJournalEntry(ctx context.Context, owner domain.PublicKey, title string) (*domain.JournalEntry, error) {
	if len(title) > domain.MaxTitleLength {
		s.LogDebug(ctx, "Journal entry not found", slog.Int("title_len", len(title)))
		return nil, domain.ErrNotFound
	}

	address, _, err := s.DeriveAddress(owner, title)
	if err != nil {
		return nil, err
	}

	entry, err := s.GetJournalEntryByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, owner, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) GetJournalEntryByAddress(ctx context.Context, address domain.Address) (*domain.JournalEntry, error) {
	entry, err := s.journalEntryRepo.FindJournalEntryByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Journal entry not found", slog.String("address", address.String()))
			return nil, domain.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get journal entry", slog.String("address", address.String()))
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

// toProgramError maps a storage failure to the typed error reported to
// callers. It returns nil for failures that have no program error.
func toProgramError(err error) *domain.ProgramError {
	if pe, ok := domain.AsProgramError(err); ok {
		return pe
	}
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		return domain.ErrAlreadyExists
	case errors.Is(err, apperrors.ErrNotFound):
		return domain.ErrNotFound
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return domain.ErrInsufficientFunds
	}
	return nil
}
