package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// JournalEntry represents one row of the journal_entries table. Rows are
// append-only: no UPDATE statement targets this table.
type JournalEntry struct {
	EntryID     string      `db:"entry_id"`
	SchoolID    string      `db:"school_id"`
	EntryDate   time.Time   `db:"entry_date"`
	Reference   string      `db:"reference"`
	Description string      `db:"description"`
	Status      EntryStatus `db:"status"`
	CreatedAt   time.Time   `db:"created_at"`
	CreatedBy   string      `db:"created_by"`
}

// JournalLine represents one row of the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	StudentID *string         `db:"student_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
}
