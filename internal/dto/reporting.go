package dto

import (
	"time"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneralLedgerParams narrows the general ledger query. Zero-valued dates
// leave that side of the range unbounded; a nil AccountID returns all
// accounts' lines.
type GeneralLedgerParams struct {
	StartDate time.Time
	EndDate   time.Time
	AccountID *string
}

// LedgerLineResponse is one denormalized general ledger row.
type LedgerLineResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ToLedgerLineResponses converts domain ledger lines to DTOs.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	responses := make([]LedgerLineResponse, len(lines))
	for i, l := range lines {
		responses[i] = LedgerLineResponse{
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			AccountType: string(l.AccountType),
			EntryID:     l.EntryID,
			EntryDate:   l.EntryDate,
			Description: l.Description,
			Reference:   l.Reference,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return responses
}

// TrialBalanceRowResponse is one aggregated trial balance row.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceResponse carries the per-account rows plus the closure
// diagnostic: grand totals and whether they match.
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	Balanced    bool                      `json:"balanced"`
}

// ToTrialBalanceResponse converts a domain report to its DTO.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			TotalDebit:  row.TotalDebit,
			TotalCredit: row.TotalCredit,
		}
	}
	return TrialBalanceResponse{
		Rows:        rows,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
		Balanced:    r.Balanced,
	}
}
