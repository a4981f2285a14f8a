package repositories

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// ReportingRepository derives read-time reports from the posted journal log.
// Balances are never stored for the general ledger; they are aggregated on
// read.
type ReportingRepository interface {
	// GetGeneralLedgerLines returns posted lines for the school within the
	// (inclusive) date range, optionally restricted to one account, ordered
	// by account code ascending then entry date ascending.
	GetGeneralLedgerLines(ctx context.Context, schoolID string, params dto.GeneralLedgerParams) ([]domain.LedgerLine, error)

	// GetTrialBalanceRows aggregates posted debits and credits per account,
	// including inactive accounts with postings, excluding accounts whose
	// totals are both zero, ordered by account code ascending.
	GetTrialBalanceRows(ctx context.Context, schoolID string) ([]domain.TrialBalanceRow, error)
}
