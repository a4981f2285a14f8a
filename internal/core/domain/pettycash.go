package domain

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

// PettyCashAccount is a custodial float held by one user.
//
// Invariant: 0 <= CurrentBalance <= FloatAmount after every transaction,
// enforced by the petty cash engine under a row lock.
type PettyCashAccount struct {
	AccountID      string          `json:"accountID"`
	SchoolID       string          `json:"schoolID"`
	CustodianID    string          `json:"custodianID"`
	FloatAmount    decimal.Decimal `json:"floatAmount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields

	// CustodianName is the custodian's display name, resolved on read.
	CustodianName string `json:"custodianName,omitempty"`
}

// PettyCashTransaction is an immutable record of a disbursement or
// replenishment. Each insertion is paired, in the same atomic transaction,
// with an update to the owning account's cached balance.
type PettyCashTransaction struct {
	TransactionID   string                   `json:"transactionID"`
	AccountID       string                   `json:"accountID"`
	TransactionType PettyCashTransactionType `json:"transactionType"`
	Amount          decimal.Decimal          `json:"amount"`
	Description     string                   `json:"description"`
	Reference       string                   `json:"reference"`
	TransactionDate time.Time                `json:"transactionDate"`
	CreatedAt       time.Time                `json:"createdAt"`
	CreatedBy       string                   `json:"createdBy"`
}
