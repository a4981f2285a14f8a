package services

import (
	"context"
	"fmt"

	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// LedgerService implements the general ledger query engine. Ledger balances
// are never stored; every read derives them from posted journal lines.
type LedgerService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(reportingRepo portsrepo.ReportingRepository, accountSvc portssvc.AccountSvcFacade) *LedgerService {
	return &LedgerService{reportingRepo: reportingRepo, accountSvc: accountSvc}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// GetGeneralLedger returns posted lines for the school, ordered by account
// code then entry date. Zero-valued dates leave that side of the range open.
func (s *LedgerService) GetGeneralLedger(ctx context.Context, schoolID string, params dto.GeneralLedgerParams) ([]domain.LedgerLine, error) {
	if !params.StartDate.IsZero() && !params.EndDate.IsZero() && params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("%w: endDate precedes startDate", apperrors.ErrValidation)
	}

	if params.AccountID != nil {
		// Restricting to one account requires the account to belong to the
		// caller's school.
		accounts, err := s.accountSvc.GetAccountsByIDs(ctx, schoolID, []string{*params.AccountID})
		if err != nil {
			return nil, err
		}
		if _, ok := accounts[*params.AccountID]; !ok {
			return nil, fmt.Errorf("account %s: %w", *params.AccountID, apperrors.ErrNotFound)
		}
	}

	lines, err := s.reportingRepo.GetGeneralLedgerLines(ctx, schoolID, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to query general ledger")
		return nil, err
	}
	return lines, nil
}
