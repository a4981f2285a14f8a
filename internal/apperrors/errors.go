package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates an unclassified persistence or system failure.
var ErrInternal = errors.New("internal error")

// ErrBusinessRule groups routine, expected business-rule rejections
// (422-class). These are never logged as system failures.
var ErrBusinessRule = errors.New("business rule violation")

// ErrNoLines is returned when a journal entry is submitted without any lines.
var ErrNoLines = fmt.Errorf("%w: journal entry must contain at least one line", ErrValidation)

// ErrEmptyEntry is returned when a journal entry balances but moves no value.
var ErrEmptyEntry = fmt.Errorf("%w: journal entry must move a positive amount", ErrValidation)

// AppError wraps an underlying error with an HTTP-ish status code and a
// caller-facing message. Repositories use it for unclassified failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// UnbalancedEntryError is returned when the debit and credit totals of a
// submitted journal entry differ. It carries both computed totals so the
// caller can display the mismatch.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is unbalanced: total debit %s does not equal total credit %s",
		e.TotalDebit.String(), e.TotalCredit.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// DuplicateAccountCodeError is returned when an account code already exists
// within the same school.
type DuplicateAccountCodeError struct {
	AccountCode string
}

func (e *DuplicateAccountCodeError) Error() string {
	return fmt.Sprintf("account code %q already exists for this school", e.AccountCode)
}

func (e *DuplicateAccountCodeError) Unwrap() error { return ErrDuplicate }

// InsufficientBalanceError is returned when a petty cash disbursement exceeds
// the custodian's current balance.
type InsufficientBalanceError struct {
	CurrentBalance decimal.Decimal
	Requested      decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient petty cash balance: requested %s but only %s is available",
		e.Requested.String(), e.CurrentBalance.String())
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrBusinessRule }

// FloatExceededError is returned when a replenishment would push a petty cash
// account above its authorized float.
type FloatExceededError struct {
	FloatAmount      decimal.Decimal
	ResultingBalance decimal.Decimal
}

func (e *FloatExceededError) Error() string {
	return fmt.Sprintf("replenishment would raise balance to %s, exceeding the authorized float of %s",
		e.ResultingBalance.String(), e.FloatAmount.String())
}

func (e *FloatExceededError) Unwrap() error { return ErrBusinessRule }
