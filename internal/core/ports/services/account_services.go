package services

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// AccountSvcFacade is the service interface for the chart of accounts.
type AccountSvcFacade interface {
	// ListAccounts returns active accounts ordered by account code ascending.
	ListAccounts(ctx context.Context, schoolID string) ([]domain.Account, error)

	// CreateAccount inserts a new school-scoped account.
	CreateAccount(ctx context.Context, schoolID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// SeedDefaultAccounts idempotently ensures the minimal default chart
	// exists; safe to call multiple times with no duplication.
	SeedDefaultAccounts(ctx context.Context, schoolID string, userID string) error

	// DeactivateAccount soft-deletes an account belonging to the school.
	DeactivateAccount(ctx context.Context, schoolID string, accountID string, userID string) error

	// GetAccountsByIDs fetches accounts by ID, verifying school membership.
	GetAccountsByIDs(ctx context.Context, schoolID string, accountIDs []string) (map[string]domain.Account, error)
}
