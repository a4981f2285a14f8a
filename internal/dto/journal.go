package dto

import (
	"time"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit within a submitted entry.
// Callers are expected to set exactly one of Debit/Credit; the balancing
// check is applied to entry totals.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	StudentID *string         `json:"studentID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// PostJournalEntryRequest defines the payload for posting a journal entry.
type PostJournalEntryRequest struct {
	EntryDate   time.Time            `json:"entryDate" binding:"required"`
	Reference   string               `json:"reference"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	StudentID   *string         `json:"studentID,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       string                `json:"entryID"`
	EntryDate     time.Time             `json:"entryDate"`
	Reference     string                `json:"reference"`
	Description   string                `json:"description"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	CreatedByName string                `json:"createdByName,omitempty"`
	Lines         []JournalLineResponse `json:"lines"`
}

// ListJournalEntriesResponse is a paginated journal listing with the total
// row count for UI page controls.
type ListJournalEntriesResponse struct {
	Data  []JournalEntryResponse `json:"data"`
	Total int64                  `json:"total"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		AccountCode: l.AccountCode,
		AccountName: l.AccountName,
		StudentID:   l.StudentID,
		Debit:       l.Debit,
		Credit:      l.Credit,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry (with lines) to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i := range e.Lines {
		lines[i] = ToJournalLineResponse(&e.Lines[i])
	}
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		EntryDate:     e.EntryDate,
		Reference:     e.Reference,
		Description:   e.Description,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		CreatedByName: e.CreatedByName,
		Lines:         lines,
	}
}
