package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	// Posted is the terminal state of every successfully validated entry.
	Posted EntryStatus = "POSTED"
	// Void is reserved for a future reversal flow. No operation currently
	// produces it; readers filter on POSTED so a voiding flow can
	// mark-and-exclude later without touching them.
	Void EntryStatus = "VOID"
)

// JournalEntry is an immutable, dated financial event owning 1..N lines.
//
// Invariant: the sum of line debits equals the sum of line credits, and that
// sum is strictly positive. Entries are never updated after posting;
// corrections are made by posting offsetting entries.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	SchoolID    string        `json:"schoolID"`
	EntryDate   time.Time     `json:"entryDate"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Status      EntryStatus   `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	CreatedBy   string        `json:"createdBy"`
	Lines       []JournalLine `json:"lines,omitempty"`

	// CreatedByName is the creator's display name, resolved on read.
	CreatedByName string `json:"createdByName,omitempty"`
}

// JournalLine is one debit or credit against one account within one entry.
// Exactly one of Debit/Credit is expected to be non-zero per line; the
// balancing invariant is enforced on entry totals.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	StudentID *string         `json:"studentID,omitempty"` // optional, for fee-linked lines
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`

	// Denormalized account fields, populated on read.
	AccountCode string      `json:"accountCode,omitempty"`
	AccountName string      `json:"accountName,omitempty"`
	AccountType AccountType `json:"accountType,omitempty"`
}
