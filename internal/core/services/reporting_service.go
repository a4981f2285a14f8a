package services

import (
	"context"
	"log/slog"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService implements the trial balance engine.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetTrialBalance aggregates posted debits and credits per account and
// computes the closure diagnostic: for a ledger built only from balanced
// entries the grand totals must match, so Balanced=false signals data
// corruption rather than a user mistake.
func (s *ReportingService) GetTrialBalance(ctx context.Context, schoolID string) (*domain.TrialBalanceReport, error) {
	rows, err := s.reportingRepo.GetTrialBalanceRows(ctx, schoolID)
	if err != nil {
		s.LogError(ctx, err, "Failed to query trial balance")
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}

	report := &domain.TrialBalanceReport{
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Balanced:    totalDebit.Equal(totalCredit),
	}

	if !report.Balanced {
		s.LogWarn(ctx, "Trial balance does not close",
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()))
	}

	return report, nil
}
