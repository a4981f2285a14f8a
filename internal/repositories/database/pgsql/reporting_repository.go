package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new repository for read-time reports.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetGeneralLedgerLines streams posted journal lines joined with account and
// entry data. Filters are appended dynamically; only posted entries count.
func (r *PgxReportingRepository) GetGeneralLedgerLines(ctx context.Context, schoolID string, params dto.GeneralLedgerParams) ([]domain.LedgerLine, error) {
	query := `
		SELECT a.account_id, a.account_code, a.account_name, a.account_type,
		       e.entry_id, e.entry_date, e.description, e.reference,
		       l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.school_id = $1 AND e.status = 'POSTED'
	`
	args := []any{schoolID}

	if !params.StartDate.IsZero() {
		args = append(args, params.StartDate)
		query += ` AND e.entry_date >= $` + strconv.Itoa(len(args))
	}
	if !params.EndDate.IsZero() {
		args = append(args, params.EndDate)
		query += ` AND e.entry_date <= $` + strconv.Itoa(len(args))
	}
	if params.AccountID != nil {
		args = append(args, *params.AccountID)
		query += ` AND l.account_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY a.account_code ASC, e.entry_date ASC, e.created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query general ledger lines for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		err := rows.Scan(
			&line.AccountID,
			&line.AccountCode,
			&line.AccountName,
			&line.AccountType,
			&line.EntryID,
			&line.EntryDate,
			&line.Description,
			&line.Reference,
			&line.Debit,
			&line.Credit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan general ledger row for school %s: %w", schoolID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating general ledger rows for school %s: %w", schoolID, err)
	}

	return lines, nil
}

// GetTrialBalanceRows aggregates posted debits and credits per account.
// Inactive accounts with postings still appear; accounts with no postings at
// all are dropped by the HAVING clause.
func (r *PgxReportingRepository) GetTrialBalanceRows(ctx context.Context, schoolID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.account_code, a.account_name, a.account_type,
		       COALESCE(SUM(pl.debit), 0) AS total_debit,
		       COALESCE(SUM(pl.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			SELECT l.account_id, l.debit, l.credit
			FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.status = 'POSTED'
		) pl ON pl.account_id = a.account_id
		WHERE a.school_id = $1
		GROUP BY a.account_id, a.account_code, a.account_name, a.account_type
		HAVING COALESCE(SUM(pl.debit), 0) <> 0 OR COALESCE(SUM(pl.credit), 0) <> 0
		ORDER BY a.account_code ASC;
	`
	rows, err := r.Pool.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.TotalDebit,
			&row.TotalCredit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row for school %s: %w", schoolID, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows for school %s: %w", schoolID, err)
	}

	return result, nil
}
