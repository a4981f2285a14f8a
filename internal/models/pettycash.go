package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashTransactionType distinguishes disbursements from replenishments.
type PettyCashTransactionType string

const (
	Disburse  PettyCashTransactionType = "DISBURSE"
	Replenish PettyCashTransactionType = "REPLENISH"
)

// PettyCashAccount represents one row of the petty_cash_accounts table.
type PettyCashAccount struct {
	AccountID      string          `db:"account_id"`
	SchoolID       string          `db:"school_id"`
	CustodianID    string          `db:"custodian_id"`
	FloatAmount    decimal.Decimal `db:"float_amount"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// PettyCashTransaction represents one row of the petty_cash_transactions
// table. Rows are append-only.
type PettyCashTransaction struct {
	TransactionID   string                   `db:"transaction_id"`
	AccountID       string                   `db:"account_id"`
	TransactionType PettyCashTransactionType `db:"transaction_type"`
	Amount          decimal.Decimal          `db:"amount"`
	Description     string                   `db:"description"`
	Reference       string                   `db:"reference"`
	TransactionDate time.Time                `db:"transaction_date"`
	CreatedAt       time.Time                `db:"created_at"`
	CreatedBy       string                   `db:"created_by"`
}
