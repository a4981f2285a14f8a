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
)

// AccountService implements the chart-of-accounts operations.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// ListAccounts returns the school's active accounts ordered by account code.
func (s *AccountService) ListAccounts(ctx context.Context, schoolID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, schoolID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// CreateAccount inserts a new school-scoped account.
func (s *AccountService) CreateAccount(ctx context.Context, schoolID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		SchoolID:    schoolID,
		AccountCode: req.AccountCode,
		AccountName: req.AccountName,
		AccountType: domain.AccountType(req.AccountType),
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_code", req.AccountCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_code", account.AccountCode))
	return &account, nil
}

// SeedDefaultAccounts ensures the minimal default chart exists for the
// school. Each code is inserted only if absent, so repeated calls are safe.
func (s *AccountService) SeedDefaultAccounts(ctx context.Context, schoolID string, userID string) error {
	now := time.Now().UTC()
	inserted := 0
	for _, def := range domain.DefaultChart {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			SchoolID:    schoolID,
			AccountCode: def.AccountCode,
			AccountName: def.AccountName,
			AccountType: def.AccountType,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		created, err := s.accountRepo.EnsureAccount(ctx, account)
		if err != nil {
			s.LogError(ctx, err, "Failed to seed default account", slog.String("account_code", def.AccountCode))
			return fmt.Errorf("failed to seed default account %s: %w", def.AccountCode, err)
		}
		if created {
			inserted++
		}
	}

	s.LogInfo(ctx, "Default chart seeded", slog.Int("inserted", inserted))
	return nil
}

// DeactivateAccount soft-deletes an account after verifying school ownership.
func (s *AccountService) DeactivateAccount(ctx context.Context, schoolID string, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.SchoolID != schoolID {
		// Accounts of other schools are indistinguishable from missing ones.
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// GetAccountsByIDs fetches accounts by ID. Accounts belonging to another
// school are dropped from the result, so callers see them as missing.
func (s *AccountService) GetAccountsByIDs(ctx context.Context, schoolID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts by IDs")
		return nil, err
	}

	for id, account := range accounts {
		if account.SchoolID != schoolID {
			delete(accounts, id)
		}
	}
	return accounts, nil
}
