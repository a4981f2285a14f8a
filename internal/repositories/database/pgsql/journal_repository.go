package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/models"
	"github.com/sams-dev/school_accounting_app/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// NewJournalRepository creates a new repository for the journal log.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry header and its lines atomically. The line
// inserts run as one batch; a foreign key violation on account_id surfaces
// as ErrNotFound after rollback.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	entryModel := mapping.ToModelJournalEntry(entry)
	insertEntry := `
		INSERT INTO journal_entries (entry_id, school_id, entry_date, reference, description, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertEntry,
		entryModel.EntryID,
		entryModel.SchoolID,
		entryModel.EntryDate,
		entryModel.Reference,
		entryModel.Description,
		entryModel.Status,
		entryModel.CreatedAt,
		entryModel.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entryModel.EntryID, err)
	}

	insertLine := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, student_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertLine, m.LineID, m.EntryID, m.AccountID, m.StudentID, m.Debit, m.Credit)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, execErr := br.Exec(); execErr != nil && batchErr == nil {
			batchErr = execErr
		}
	}
	if closeErr := br.Close(); closeErr != nil && batchErr == nil {
		batchErr = closeErr
	}
	if batchErr != nil {
		var pgErr *pgconn.PgError
		if errors.As(batchErr, &pgErr) && pgErr.Code == "23503" { // foreign key violation
			return fmt.Errorf("%w: journal line references an unknown account", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to insert journal lines for entry %s: %w", entryModel.EntryID, batchErr)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry with its lines and the creator's display
// name.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT e.entry_id, e.school_id, e.entry_date, e.reference, e.description, e.status, e.created_at, e.created_by,
		       COALESCE(u.display_name, '')
		FROM journal_entries e
		LEFT JOIN users u ON u.user_id = e.created_by
		WHERE e.entry_id = $1;
	`
	var m models.JournalEntry
	var createdByName string
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.SchoolID,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&createdByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.CreatedByName = createdByName

	linesByEntry, err := r.findLinesForEntries(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = linesByEntry[entryID]

	return &entry, nil
}

// ListEntries returns a page of the school's entries newest first, plus the
// total entry count for pagination controls.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, schoolID string, limit, offset int) ([]domain.JournalEntry, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_entries WHERE school_id = $1 AND status = 'POSTED';`
	if err := r.Pool.QueryRow(ctx, countQuery, schoolID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries for school %s: %w", schoolID, err)
	}

	query := `
		SELECT e.entry_id, e.school_id, e.entry_date, e.reference, e.description, e.status, e.created_at, e.created_by,
		       COALESCE(u.display_name, '')
		FROM journal_entries e
		LEFT JOIN users u ON u.user_id = e.created_by
		WHERE e.school_id = $1 AND e.status = 'POSTED'
		ORDER BY e.entry_date DESC, e.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, schoolID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query journal entries for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		var m models.JournalEntry
		var createdByName string
		err := rows.Scan(
			&m.EntryID,
			&m.SchoolID,
			&m.EntryDate,
			&m.Reference,
			&m.Description,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&createdByName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan journal entry row for school %s: %w", schoolID, err)
		}
		entry := mapping.ToDomainJournalEntry(m)
		entry.CreatedByName = createdByName
		entries = append(entries, entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating journal entry rows for school %s: %w", schoolID, err)
	}

	linesByEntry, err := r.findLinesForEntries(ctx, entryIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}

	return entries, total, nil
}

// findLinesForEntries fetches all lines of the given entries in one query,
// each expanded with account code, name and type, grouped by entry ID.
func (r *PgxJournalRepository) findLinesForEntries(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.student_id, l.debit, l.credit,
		       a.account_code, a.account_name, a.account_type
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY a.account_code, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]domain.JournalLine)
	for rows.Next() {
		var m models.JournalLine
		var accountCode, accountName, accountType string
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.StudentID,
			&m.Debit,
			&m.Credit,
			&accountCode,
			&accountName,
			&accountType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		line := mapping.ToDomainJournalLine(m)
		line.AccountCode = accountCode
		line.AccountName = accountName
		line.AccountType = domain.AccountType(accountType)
		linesByEntry[line.EntryID] = append(linesByEntry[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	return linesByEntry, nil
}
