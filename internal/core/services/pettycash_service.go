package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PettyCashService implements the custodial float engine. The cached balance
// on each account is the one denormalized balance in the system; every write
// to it happens under a row lock in the same transaction as the transaction
// row insert.
type PettyCashService struct {
	BaseService
	pettyCashRepo portsrepo.PettyCashRepository
	userRepo      portsrepo.UserRepository
}

// NewPettyCashService creates a new PettyCashService.
func NewPettyCashService(pettyCashRepo portsrepo.PettyCashRepository, userRepo portsrepo.UserRepository) *PettyCashService {
	return &PettyCashService{pettyCashRepo: pettyCashRepo, userRepo: userRepo}
}

var _ portssvc.PettyCashSvcFacade = (*PettyCashService)(nil)

// CreateAccount opens a custodial float. The account starts fully funded:
// currentBalance = floatAmount.
func (s *PettyCashService) CreateAccount(ctx context.Context, schoolID string, req dto.CreatePettyCashAccountRequest, userID string) (*domain.PettyCashAccount, error) {
	if !req.FloatAmount.IsPositive() {
		return nil, fmt.Errorf("%w: floatAmount must be positive", apperrors.ErrValidation)
	}

	custodian, err := s.userRepo.FindUserByID(ctx, req.CustodianID)
	if err != nil {
		return nil, fmt.Errorf("custodian %s: %w", req.CustodianID, err)
	}

	now := time.Now().UTC()
	account := domain.PettyCashAccount{
		AccountID:      uuid.NewString(),
		SchoolID:       schoolID,
		CustodianID:    req.CustodianID,
		FloatAmount:    req.FloatAmount,
		CurrentBalance: req.FloatAmount,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.pettyCashRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create petty cash account", slog.String("custodian_id", req.CustodianID))
		return nil, err
	}
	account.CustodianName = custodian.DisplayName

	s.LogInfo(ctx, "Petty cash account created",
		slog.String("account_id", account.AccountID),
		slog.String("float_amount", account.FloatAmount.String()))
	return &account, nil
}

// ListAccounts returns the school's active petty cash accounts.
func (s *PettyCashService) ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error) {
	accounts, err := s.pettyCashRepo.ListAccounts(ctx, schoolID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list petty cash accounts")
		return nil, err
	}
	return accounts, nil
}

// RecordTransaction appends a disbursement or replenishment and updates the
// cached balance atomically. The row lock taken by FindAccountByIDForUpdate
// serializes concurrent postings against the same account, so the balance
// bounds hold under contention:
//
//	DISBURSE:  amount <= currentBalance
//	REPLENISH: currentBalance + amount <= floatAmount
func (s *PettyCashService) RecordTransaction(ctx context.Context, schoolID string, accountID string, req dto.RecordPettyCashTransactionRequest, userID string) (*domain.PettyCashTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	tx, err := s.pettyCashRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.pettyCashRepo.Rollback(ctx, tx) }()

	account, err := s.pettyCashRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if account.SchoolID != schoolID {
		return nil, fmt.Errorf("petty cash account %s: %w", accountID, apperrors.ErrNotFound)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: petty cash account %s is inactive", apperrors.ErrConflict, accountID)
	}

	var newBalance decimal.Decimal
	switch domain.PettyCashTransactionType(req.TransactionType) {
	case domain.Disburse:
		if req.Amount.GreaterThan(account.CurrentBalance) {
			return nil, &apperrors.InsufficientBalanceError{
				CurrentBalance: account.CurrentBalance,
				Requested:      req.Amount,
			}
		}
		newBalance = account.CurrentBalance.Sub(req.Amount)
	case domain.Replenish:
		newBalance = account.CurrentBalance.Add(req.Amount)
		if newBalance.GreaterThan(account.FloatAmount) {
			return nil, &apperrors.FloatExceededError{
				FloatAmount:      account.FloatAmount,
				ResultingBalance: newBalance,
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.TransactionType)
	}

	now := time.Now().UTC()
	txn := domain.PettyCashTransaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		TransactionType: domain.PettyCashTransactionType(req.TransactionType),
		Amount:          req.Amount,
		Description:     req.Description,
		Reference:       req.Reference,
		TransactionDate: req.TransactionDate,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	if err := s.pettyCashRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save petty cash transaction", slog.String("account_id", accountID))
		return nil, err
	}
	if err := s.pettyCashRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, newBalance, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update petty cash balance", slog.String("account_id", accountID))
		return nil, err
	}
	if err := s.pettyCashRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit petty cash transaction", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Petty cash transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", accountID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()),
		slog.String("new_balance", newBalance.String()))
	return &txn, nil
}

// ListTransactions returns a page of the account's transaction history.
func (s *PettyCashService) ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	txns, err := s.pettyCashRepo.ListTransactions(ctx, schoolID, accountID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list petty cash transactions", slog.String("account_id", accountID))
		return nil, err
	}
	return txns, nil
}
