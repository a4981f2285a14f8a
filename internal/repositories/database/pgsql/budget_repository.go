package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/models"
	"github.com/sams-dev/school_accounting_app/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// NewBudgetRepository creates a new repository for budgets and expense
// categories.
func NewBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// UpsertBudget inserts the budget or updates the existing allocation for the
// same (school, category, term, year) key in a single atomic statement.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, school_id, category_id, term, year, amount_allocated, amount_spent, is_locked, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (school_id, category_id, term, year) DO UPDATE SET
			amount_allocated = EXCLUDED.amount_allocated,
			is_locked = EXCLUDED.is_locked,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING budget_id, school_id, category_id, term, year, amount_allocated, amount_spent, is_locked, notes, created_at, created_by, last_updated_at, last_updated_by;
	`
	var out models.Budget
	err := r.Pool.QueryRow(ctx, query,
		m.BudgetID,
		m.SchoolID,
		m.CategoryID,
		m.Term,
		m.Year,
		m.AmountAllocated,
		m.AmountSpent,
		m.IsLocked,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(
		&out.BudgetID,
		&out.SchoolID,
		&out.CategoryID,
		&out.Term,
		&out.Year,
		&out.AmountAllocated,
		&out.AmountSpent,
		&out.IsLocked,
		&out.Notes,
		&out.CreatedAt,
		&out.CreatedBy,
		&out.LastUpdatedAt,
		&out.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key violation
			return nil, fmt.Errorf("%w: budget references an unknown category", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to upsert budget for category %s: %w", m.CategoryID, err)
	}

	d := mapping.ToDomainBudget(out)
	return &d, nil
}

// ListBudgets returns the school's budgets for a term/year with category
// names attached.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error) {
	query := `
		SELECT b.budget_id, b.school_id, b.category_id, b.term, b.year, b.amount_allocated, b.amount_spent, b.is_locked, b.notes,
		       b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
		       c.name
		FROM budgets b
		JOIN expense_categories c ON c.category_id = b.category_id
		WHERE b.school_id = $1 AND b.term = $2 AND b.year = $3
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, schoolID, term, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var m models.Budget
		var categoryName string
		err := rows.Scan(
			&m.BudgetID,
			&m.SchoolID,
			&m.CategoryID,
			&m.Term,
			&m.Year,
			&m.AmountAllocated,
			&m.AmountSpent,
			&m.IsLocked,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&categoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row for school %s: %w", schoolID, err)
		}
		b := mapping.ToDomainBudget(m)
		b.CategoryName = categoryName
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows for school %s: %w", schoolID, err)
	}

	return budgets, nil
}

// FindCategoryByID retrieves one expense category.
func (r *PgxBudgetRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, school_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		WHERE category_id = $1;
	`
	var m models.ExpenseCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.SchoolID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category by ID %s: %w", categoryID, err)
	}

	d := mapping.ToDomainExpenseCategory(m)
	return &d, nil
}

// ListCategories returns the school's expense categories ordered by name.
func (r *PgxBudgetRepository) ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, school_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		WHERE school_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories for school %s: %w", schoolID, err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var m models.ExpenseCategory
		err := rows.Scan(
			&m.CategoryID,
			&m.SchoolID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense category row for school %s: %w", schoolID, err)
		}
		categories = append(categories, mapping.ToDomainExpenseCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense category rows for school %s: %w", schoolID, err)
	}

	return categories, nil
}

// SaveCategory inserts a new expense category.
func (r *PgxBudgetRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)

	query := `
		INSERT INTO expense_categories (category_id, school_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.SchoolID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: expense category %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save expense category %s: %w", m.CategoryID, err)
	}
	return nil
}
