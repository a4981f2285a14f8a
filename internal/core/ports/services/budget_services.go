package services

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// BudgetSvcFacade is the service interface for the budget tracker.
type BudgetSvcFacade interface {
	// GetBudgets returns the school's budgets for a term/year with category
	// descriptors attached.
	GetBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error)

	// SetBudget upserts the allocation keyed on (schoolID, categoryID, term,
	// year). amountSpent is informational and never reconciled here.
	SetBudget(ctx context.Context, schoolID string, req dto.SetBudgetRequest, userID string) (*domain.Budget, error)

	// ListCategories returns the school's expense categories.
	ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error)

	// CreateCategory inserts a new expense category.
	CreateCategory(ctx context.Context, schoolID string, req dto.CreateCategoryRequest, userID string) (*domain.ExpenseCategory, error)
}
