package domain

import "github.com/shopspring/decimal"

// ExpenseCategory is a school-scoped descriptor that budgets allocate against.
type ExpenseCategory struct {
	CategoryID string `json:"categoryID"`
	SchoolID   string `json:"schoolID"`
	Name       string `json:"name"`
	AuditFields
}

// Budget is an allocation ceiling for an expense category in a given
// term/year. Unique per (schoolID, categoryID, term, year); setting a budget
// for an existing key updates the allocation rather than creating a
// duplicate.
type Budget struct {
	BudgetID        string          `json:"budgetID"`
	SchoolID        string          `json:"schoolID"`
	CategoryID      string          `json:"categoryID"`
	Term            int             `json:"term"`
	Year            int             `json:"year"`
	AmountAllocated decimal.Decimal `json:"amountAllocated"`
	// AmountSpent is denormalized and informational; it is not reconciled
	// against the journal by this engine.
	AmountSpent decimal.Decimal `json:"amountSpent"`
	IsLocked    bool            `json:"isLocked"`
	Notes       string          `json:"notes"`
	AuditFields

	// CategoryName is the category descriptor, resolved on read.
	CategoryName string `json:"categoryName,omitempty"`
}
