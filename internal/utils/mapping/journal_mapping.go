package mapping

import (
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/models"
)

// ToModelJournalEntry converts a domain journal entry to its DB model.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		SchoolID:    d.SchoolID,
		EntryDate:   d.EntryDate,
		Reference:   d.Reference,
		Description: d.Description,
		Status:      models.EntryStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainJournalEntry converts a DB journal entry row to its domain form.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		SchoolID:    m.SchoolID,
		EntryDate:   m.EntryDate,
		Reference:   m.Reference,
		Description: m.Description,
		Status:      domain.EntryStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToModelJournalLine converts a domain journal line to its DB model.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		StudentID: d.StudentID,
		Debit:     d.Debit,
		Credit:    d.Credit,
	}
}

// ToDomainJournalLine converts a DB journal line row to its domain form.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		StudentID: m.StudentID,
		Debit:     m.Debit,
		Credit:    m.Credit,
	}
}

// ToDomainJournalLineSlice converts a slice of line rows to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
