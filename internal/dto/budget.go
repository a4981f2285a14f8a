package dto

import (
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the payload for the budget upsert. No bounds are
// imposed on the allocation magnitude; business-level limits are the
// caller's responsibility.
type SetBudgetRequest struct {
	CategoryID      string          `json:"categoryID" binding:"required"`
	Term            int             `json:"term" binding:"required,min=1,max=3"`
	Year            int             `json:"year" binding:"required"`
	AmountAllocated decimal.Decimal `json:"amountAllocated"`
	Notes           string          `json:"notes"`
}

// CreateCategoryRequest defines the payload for creating an expense category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// BudgetResponse defines the data returned for a budget, with its category
// descriptor attached.
type BudgetResponse struct {
	BudgetID        string          `json:"budgetID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	Term            int             `json:"term"`
	Year            int             `json:"year"`
	AmountAllocated decimal.Decimal `json:"amountAllocated"`
	AmountSpent     decimal.Decimal `json:"amountSpent"`
	IsLocked        bool            `json:"isLocked"`
	Notes           string          `json:"notes"`
}

// CategoryResponse defines the data returned for an expense category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:        b.BudgetID,
		CategoryID:      b.CategoryID,
		CategoryName:    b.CategoryName,
		Term:            b.Term,
		Year:            b.Year,
		AmountAllocated: b.AmountAllocated,
		AmountSpent:     b.AmountSpent,
		IsLocked:        b.IsLocked,
		Notes:           b.Notes,
	}
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = ToBudgetResponse(&budgets[i])
	}
	return responses
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.ExpenseCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
	}
	return responses
}
