package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetService implements budget allocations and expense categories.
type BudgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// GetBudgets returns the school's budgets for a term/year.
func (s *BudgetService) GetBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error) {
	if term < 1 || term > 3 {
		return nil, fmt.Errorf("%w: term must be between 1 and 3", apperrors.ErrValidation)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", apperrors.ErrValidation)
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, schoolID, term, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}
	return budgets, nil
}

// SetBudget upserts the allocation keyed on (school, category, term, year).
// Setting an existing key updates the allocation in place rather than
// creating a duplicate row. No bounds are imposed on the allocation
// magnitude; business-level limits are the caller's responsibility.
func (s *BudgetService) SetBudget(ctx context.Context, schoolID string, req dto.SetBudgetRequest, userID string) (*domain.Budget, error) {
	category, err := s.budgetRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.SchoolID != schoolID {
		return nil, fmt.Errorf("expense category %s: %w", req.CategoryID, apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:        uuid.NewString(),
		SchoolID:        schoolID,
		CategoryID:      req.CategoryID,
		Term:            req.Term,
		Year:            req.Year,
		AmountAllocated: req.AmountAllocated,
		AmountSpent:     decimal.Zero,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget", slog.String("category_id", req.CategoryID))
		return nil, err
	}
	saved.CategoryName = category.Name

	s.LogInfo(ctx, "Budget set",
		slog.String("budget_id", saved.BudgetID),
		slog.String("category_id", saved.CategoryID),
		slog.Int("term", saved.Term),
		slog.Int("year", saved.Year))
	return saved, nil
}

// ListCategories returns the school's expense categories.
func (s *BudgetService) ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error) {
	categories, err := s.budgetRepo.ListCategories(ctx, schoolID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense categories")
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a new expense category.
func (s *BudgetService) CreateCategory(ctx context.Context, schoolID string, req dto.CreateCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	now := time.Now().UTC()
	category := domain.ExpenseCategory{
		CategoryID: uuid.NewString(),
		SchoolID:   schoolID,
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to create expense category", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Expense category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}
