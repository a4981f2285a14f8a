package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/models"
	"github.com/sams-dev/school_accounting_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxPettyCashRepository struct {
	BaseRepository
}

// NewPettyCashRepository creates a new repository for petty cash accounts and
// their transaction log.
func NewPettyCashRepository(pool *pgxpool.Pool) portsrepo.PettyCashRepository {
	return &PgxPettyCashRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PettyCashRepository = (*PgxPettyCashRepository)(nil)

// SaveAccount inserts a new petty cash account.
func (r *PgxPettyCashRepository) SaveAccount(ctx context.Context, account domain.PettyCashAccount) error {
	m := mapping.ToModelPettyCashAccount(account)

	query := `
		INSERT INTO petty_cash_accounts (account_id, school_id, custodian_id, float_amount, current_balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.SchoolID,
		m.CustodianID,
		m.FloatAmount,
		m.CurrentBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique violation
				return fmt.Errorf("%w: petty cash account already exists", apperrors.ErrDuplicate)
			case "23503": // foreign key violation
				return fmt.Errorf("%w: custodian %s does not exist", apperrors.ErrNotFound, m.CustodianID)
			}
		}
		return fmt.Errorf("failed to save petty cash account %s: %w", m.AccountID, err)
	}
	return nil
}

// ListAccounts returns the school's active petty cash accounts with custodian
// display names attached, ordered by creation time.
func (r *PgxPettyCashRepository) ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error) {
	query := `
		SELECT p.account_id, p.school_id, p.custodian_id, p.float_amount, p.current_balance, p.is_active,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
		       COALESCE(u.display_name, '')
		FROM petty_cash_accounts p
		LEFT JOIN users u ON u.user_id = p.custodian_id
		WHERE p.school_id = $1 AND p.is_active = TRUE
		ORDER BY p.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query petty cash accounts for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	accounts := []domain.PettyCashAccount{}
	for rows.Next() {
		var m models.PettyCashAccount
		var custodianName string
		err := rows.Scan(
			&m.AccountID,
			&m.SchoolID,
			&m.CustodianID,
			&m.FloatAmount,
			&m.CurrentBalance,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&custodianName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan petty cash account row for school %s: %w", schoolID, err)
		}
		a := mapping.ToDomainPettyCashAccount(m)
		a.CustodianName = custodianName
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating petty cash account rows for school %s: %w", schoolID, err)
	}

	return accounts, nil
}

// FindAccountByIDForUpdate loads the account inside tx with a pessimistic row
// lock. Concurrent callers for the same account block here until the holding
// transaction commits or rolls back.
func (r *PgxPettyCashRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.PettyCashAccount, error) {
	query := `
		SELECT account_id, school_id, custodian_id, float_amount, current_balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM petty_cash_accounts
		WHERE account_id = $1
		FOR UPDATE;
	`
	var m models.PettyCashAccount
	err := tx.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.SchoolID,
		&m.CustodianID,
		&m.FloatAmount,
		&m.CurrentBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock petty cash account %s: %w", accountID, err)
	}

	a := mapping.ToDomainPettyCashAccount(m)
	return &a, nil
}

// SaveTransactionInTx inserts the transaction row inside tx.
func (r *PgxPettyCashRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.PettyCashTransaction) error {
	m := mapping.ToModelPettyCashTransaction(txn)

	query := `
		INSERT INTO petty_cash_transactions (transaction_id, account_id, transaction_type, amount, description, reference, transaction_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.Reference,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save petty cash transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateAccountBalanceInTx sets the account's cached balance inside tx. The
// caller holds the row lock from FindAccountByIDForUpdate.
func (r *PgxPettyCashRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE petty_cash_accounts
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, accountID, newBalance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update petty cash balance for account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListTransactions returns a page of the account's transactions newest first.
// The join enforces school scoping so foreign accounts yield an empty page.
func (r *PgxPettyCashRepository) ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error) {
	query := `
		SELECT t.transaction_id, t.account_id, t.transaction_type, t.amount, t.description, t.reference, t.transaction_date, t.created_at, t.created_by
		FROM petty_cash_transactions t
		JOIN petty_cash_accounts a ON a.account_id = t.account_id
		WHERE t.account_id = $1 AND a.school_id = $2
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, schoolID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query petty cash transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := []domain.PettyCashTransaction{}
	for rows.Next() {
		var m models.PettyCashTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.TransactionType,
			&m.Amount,
			&m.Description,
			&m.Reference,
			&m.TransactionDate,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan petty cash transaction row for account %s: %w", accountID, err)
		}
		txns = append(txns, mapping.ToDomainPettyCashTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating petty cash transaction rows for account %s: %w", accountID, err)
	}

	return txns, nil
}
