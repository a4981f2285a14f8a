package models

import "github.com/shopspring/decimal"

// ExpenseCategory represents one row of the expense_categories table.
type ExpenseCategory struct {
	CategoryID string `db:"category_id"`
	SchoolID   string `db:"school_id"`
	Name       string `db:"name"`
	AuditFields
}

// Budget represents one row of the budgets table. Unique on
// (school_id, category_id, term, year).
type Budget struct {
	BudgetID        string          `db:"budget_id"`
	SchoolID        string          `db:"school_id"`
	CategoryID      string          `db:"category_id"`
	Term            int             `db:"term"`
	Year            int             `db:"year"`
	AmountAllocated decimal.Decimal `db:"amount_allocated"`
	AmountSpent     decimal.Decimal `db:"amount_spent"`
	IsLocked        bool            `db:"is_locked"`
	Notes           string          `db:"notes"`
	AuditFields
}
