package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// JournalService implements posting and reading of the append-only journal.
type JournalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountSvcFacade) *JournalService {
	return &JournalService{journalRepo: journalRepo, accountSvc: accountSvc}
}

var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// PostJournalEntry validates the double-entry invariants, posts the entry
// atomically and returns the materialized result re-read after the commit.
//
// Validation order: line presence, per-line amount sanity, balance of totals,
// positive total, then account existence and active status.
func (s *JournalService) PostJournalEntry(ctx context.Context, schoolID string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	if len(req.Lines) == 0 {
		return nil, apperrors.ErrNoLines
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	accountIDs := make([]string, 0, len(req.Lines))
	for i, line := range req.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
		accountIDs = append(accountIDs, line.AccountID)
	}

	if !totalDebit.Equal(totalCredit) {
		return nil, &apperrors.UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}
	if totalDebit.IsZero() {
		return nil, apperrors.ErrEmptyEntry
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, schoolID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s: %w", line.AccountID, apperrors.ErrNotFound)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrValidation, account.AccountCode, line.AccountID)
		}
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		SchoolID:    schoolID,
		EntryDate:   req.EntryDate,
		Reference:   req.Reference,
		Description: req.Description,
		Status:      domain.Posted,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: lr.AccountID,
			StudentID: lr.StudentID,
			Debit:     lr.Debit,
			Credit:    lr.Credit,
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.Int("lines", len(lines)),
		slog.String("total", totalDebit.String()))

	saved, err := s.journalRepo.FindEntryByID(ctx, entry.EntryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to re-read posted journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}
	return saved, nil
}

// GetJournalEntry retrieves one entry. Entries belonging to another school
// surface as not found.
func (s *JournalService) GetJournalEntry(ctx context.Context, schoolID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.SchoolID != schoolID {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return entry, nil
}

// ListJournalEntries returns a page of entries newest first, plus the total
// count for pagination controls.
func (s *JournalService) ListJournalEntries(ctx context.Context, schoolID string, limit, offset int) (*dto.ListJournalEntriesResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.journalRepo.ListEntries(ctx, schoolID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}

	data := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		data[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return &dto.ListJournalEntriesResponse{Data: data, Total: total}, nil
}
