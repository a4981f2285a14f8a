package dto

import (
	"time"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePettyCashAccountRequest defines the payload for opening a custodial
// float. The account starts fully funded: currentBalance = floatAmount.
type CreatePettyCashAccountRequest struct {
	CustodianID string          `json:"custodianID" binding:"required"`
	FloatAmount decimal.Decimal `json:"floatAmount" binding:"required,decimalpositive"`
}

// RecordPettyCashTransactionRequest defines the payload for a disbursement or
// replenishment against one petty cash account.
type RecordPettyCashTransactionRequest struct {
	TransactionType string          `json:"transactionType" binding:"required,oneof=DISBURSE REPLENISH"`
	Amount          decimal.Decimal `json:"amount" binding:"required,decimalpositive"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
}

// PettyCashAccountResponse defines the data returned for a petty cash account.
type PettyCashAccountResponse struct {
	AccountID      string          `json:"accountID"`
	CustodianID    string          `json:"custodianID"`
	CustodianName  string          `json:"custodianName,omitempty"`
	FloatAmount    decimal.Decimal `json:"floatAmount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
}

// PettyCashTransactionResponse defines the data returned for a transaction.
type PettyCashTransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToPettyCashAccountResponse converts a domain account to its DTO.
func ToPettyCashAccountResponse(a *domain.PettyCashAccount) PettyCashAccountResponse {
	return PettyCashAccountResponse{
		AccountID:      a.AccountID,
		CustodianID:    a.CustodianID,
		CustodianName:  a.CustodianName,
		FloatAmount:    a.FloatAmount,
		CurrentBalance: a.CurrentBalance,
		IsActive:       a.IsActive,
	}
}

// ToPettyCashAccountResponses converts a slice of domain accounts.
func ToPettyCashAccountResponses(accounts []domain.PettyCashAccount) []PettyCashAccountResponse {
	responses := make([]PettyCashAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToPettyCashAccountResponse(&accounts[i])
	}
	return responses
}

// ToPettyCashTransactionResponse converts a domain transaction to its DTO.
func ToPettyCashTransactionResponse(t *domain.PettyCashTransaction) PettyCashTransactionResponse {
	return PettyCashTransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		Description:     t.Description,
		Reference:       t.Reference,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToPettyCashTransactionResponses converts a slice of domain transactions.
func ToPettyCashTransactionResponses(txns []domain.PettyCashTransaction) []PettyCashTransactionResponse {
	responses := make([]PettyCashTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToPettyCashTransactionResponse(&txns[i])
	}
	return responses
}
