package repositories

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
)

// JournalRepository persists and queries the append-only journal log.
type JournalRepository interface {
	// SaveEntry inserts the entry and all of its lines within a single
	// database transaction. If any line references an account that does not
	// exist, the whole transaction rolls back and the error unwraps to
	// apperrors.ErrNotFound.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// FindEntryByID retrieves an entry with its lines, each line expanded
	// with account code/name and the creator's display name resolved.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a page of the school's posted entries ordered by
	// entry date descending then creation time descending, each expanded
	// with its lines and creator name, plus the total posted-entry count.
	ListEntries(ctx context.Context, schoolID string, limit, offset int) ([]domain.JournalEntry, int64, error)
}
