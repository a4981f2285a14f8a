package mapping

import (
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/models"
)

// ToModelBudget converts a domain budget to its DB model.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:        d.BudgetID,
		SchoolID:        d.SchoolID,
		CategoryID:      d.CategoryID,
		Term:            d.Term,
		Year:            d.Year,
		AmountAllocated: d.AmountAllocated,
		AmountSpent:     d.AmountSpent,
		IsLocked:        d.IsLocked,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a DB budget row to its domain form.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:        m.BudgetID,
		SchoolID:        m.SchoolID,
		CategoryID:      m.CategoryID,
		Term:            m.Term,
		Year:            m.Year,
		AmountAllocated: m.AmountAllocated,
		AmountSpent:     m.AmountSpent,
		IsLocked:        m.IsLocked,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpenseCategory converts a domain category to its DB model.
func ToModelExpenseCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:  d.CategoryID,
		SchoolID:    d.SchoolID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseCategory converts a DB category row to its domain form.
func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		SchoolID:    m.SchoolID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
