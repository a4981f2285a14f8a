package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a node in a school's chart of accounts.
//
// AccountCode is unique per school and lexicographically sortable; accounts
// are never deleted, only deactivated, because historical journal lines
// reference them.
type Account struct {
	AccountID   string      `json:"accountID"`
	SchoolID    string      `json:"schoolID"`
	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// DefaultAccount describes one entry of the minimal default chart seeded for
// every school.
type DefaultAccount struct {
	AccountCode string
	AccountName string
	AccountType AccountType
}

// DefaultChart is the minimal chart of accounts ensured by account seeding.
// Seeding is idempotent: each code is inserted only if absent.
var DefaultChart = []DefaultAccount{
	{AccountCode: "1000", AccountName: "Cash", AccountType: Asset},
	{AccountCode: "1200", AccountName: "Accounts Receivable", AccountType: Asset},
	{AccountCode: "2000", AccountName: "Accounts Payable", AccountType: Liability},
	{AccountCode: "3000", AccountName: "Retained Earnings", AccountType: Equity},
	{AccountCode: "4000", AccountName: "Fee Income", AccountType: Revenue},
	{AccountCode: "5000", AccountName: "General Expenses", AccountType: Expense},
}
