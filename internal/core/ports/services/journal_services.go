package services

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// JournalSvcFacade is the service interface for the journal engine.
type JournalSvcFacade interface {
	// PostJournalEntry validates and atomically posts a balanced entry,
	// returning the fully materialized entry re-read after the commit.
	PostJournalEntry(ctx context.Context, schoolID string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// GetJournalEntry retrieves one entry with its lines; entries of other
	// schools surface as not found.
	GetJournalEntry(ctx context.Context, schoolID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns a page of entries plus the total count.
	ListJournalEntries(ctx context.Context, schoolID string, limit, offset int) (*dto.ListJournalEntriesResponse, error)
}
