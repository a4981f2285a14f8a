package repositories

import (
	"context"
	"time"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
)

// AccountRepository persists and queries the chart of accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. A (schoolID, accountCode) collision
	// surfaces as apperrors.DuplicateAccountCodeError.
	SaveAccount(ctx context.Context, account domain.Account) error

	// EnsureAccount inserts the account only if its (schoolID, accountCode)
	// does not exist yet. Returns true when a row was inserted. Used by
	// idempotent chart seeding.
	EnsureAccount(ctx context.Context, account domain.Account) (bool, error)

	// FindAccountByID retrieves an account regardless of active flag.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts; missing IDs are simply
	// absent from the returned map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListActiveAccounts returns the school's active accounts ordered by
	// account code ascending.
	ListActiveAccounts(ctx context.Context, schoolID string) ([]domain.Account, error)

	// DeactivateAccount soft-deletes an account. Accounts are never hard
	// deleted because historical journal lines reference them.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}
