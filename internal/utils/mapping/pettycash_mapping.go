package mapping

import (
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/models"
)

// ToModelPettyCashAccount converts a domain petty cash account to its DB model.
func ToModelPettyCashAccount(d domain.PettyCashAccount) models.PettyCashAccount {
	return models.PettyCashAccount{
		AccountID:      d.AccountID,
		SchoolID:       d.SchoolID,
		CustodianID:    d.CustodianID,
		FloatAmount:    d.FloatAmount,
		CurrentBalance: d.CurrentBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPettyCashAccount converts a DB petty cash account row to its domain form.
func ToDomainPettyCashAccount(m models.PettyCashAccount) domain.PettyCashAccount {
	return domain.PettyCashAccount{
		AccountID:      m.AccountID,
		SchoolID:       m.SchoolID,
		CustodianID:    m.CustodianID,
		FloatAmount:    m.FloatAmount,
		CurrentBalance: m.CurrentBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPettyCashTransaction converts a domain transaction to its DB model.
func ToModelPettyCashTransaction(d domain.PettyCashTransaction) models.PettyCashTransaction {
	return models.PettyCashTransaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		TransactionType: models.PettyCashTransactionType(d.TransactionType),
		Amount:          d.Amount,
		Description:     d.Description,
		Reference:       d.Reference,
		TransactionDate: d.TransactionDate,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainPettyCashTransaction converts a DB transaction row to its domain form.
func ToDomainPettyCashTransaction(m models.PettyCashTransaction) domain.PettyCashTransaction {
	return domain.PettyCashTransaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		TransactionType: domain.PettyCashTransactionType(m.TransactionType),
		Amount:          m.Amount,
		Description:     m.Description,
		Reference:       m.Reference,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}
