package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one denormalized row of the general ledger report. It carries
// enough data to render a ledger page without further joins.
type LedgerLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceRow aggregates all posted journal lines of one account.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceReport is the full trial balance with its closure diagnostic:
// for a fully-posted ledger the grand debit and credit totals must match.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}
