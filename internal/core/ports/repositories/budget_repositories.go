package repositories

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
)

// BudgetRepository persists budgets and their expense categories.
type BudgetRepository interface {
	// UpsertBudget inserts the budget or, when (schoolID, categoryID, term,
	// year) already exists, updates the allocation and notes in place. The
	// upsert is a single atomic statement. Returns the resulting row.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// ListBudgets returns the school's budgets for a term/year with category
	// names attached, ordered by category name.
	ListBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error)

	// FindCategoryByID retrieves one expense category.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// ListCategories returns the school's expense categories ordered by name.
	ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error)

	// SaveCategory inserts a new expense category.
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error
}
