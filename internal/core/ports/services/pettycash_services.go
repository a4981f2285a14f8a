package services

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// PettyCashSvcFacade is the service interface for the petty cash engine.
type PettyCashSvcFacade interface {
	// CreateAccount opens a custodial float; the balance starts at the float
	// amount.
	CreateAccount(ctx context.Context, schoolID string, req dto.CreatePettyCashAccountRequest, userID string) (*domain.PettyCashAccount, error)

	// ListAccounts returns active accounts with custodian names attached.
	ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error)

	// RecordTransaction appends a disbursement or replenishment and updates
	// the cached balance in the same atomic transaction, holding a row lock
	// across the check-then-write. Accounts of other schools surface as not
	// found. Returns the inserted transaction; callers re-fetch the account
	// if they need the new balance.
	RecordTransaction(ctx context.Context, schoolID string, accountID string, req dto.RecordPettyCashTransactionRequest, userID string) (*domain.PettyCashTransaction, error)

	// ListTransactions returns a page of the account's transaction history.
	ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error)
}
