package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PettyCashRepository persists custodial float accounts and their append-only
// transaction log.
//
// RecordTransaction's check-then-write runs in the service under a database
// transaction obtained from Begin; FindAccountByIDForUpdate takes a row lock
// so concurrent postings against the same account serialize.
type PettyCashRepository interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error

	// SaveAccount inserts a new petty cash account.
	SaveAccount(ctx context.Context, account domain.PettyCashAccount) error

	// ListAccounts returns the school's active petty cash accounts with
	// custodian display names attached.
	ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error)

	// FindAccountByIDForUpdate loads the account inside tx with a pessimistic
	// row lock (SELECT ... FOR UPDATE).
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.PettyCashAccount, error)

	// SaveTransactionInTx inserts the transaction row inside tx.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.PettyCashTransaction) error

	// UpdateAccountBalanceInTx sets the account's cached balance inside tx.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, userID string, now time.Time) error

	// ListTransactions returns a page of the account's transactions ordered
	// by transaction date descending then creation time descending. Accounts
	// of other schools yield an empty page.
	ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error)
}
