package services

import (
	"context"

	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	"github.com/sams-dev/school_accounting_app/internal/dto"
)

// LedgerSvcFacade is the service interface for the general ledger query
// engine.
type LedgerSvcFacade interface {
	GetGeneralLedger(ctx context.Context, schoolID string, params dto.GeneralLedgerParams) ([]domain.LedgerLine, error)
}

// ReportingSvcFacade is the service interface for the trial balance engine.
type ReportingSvcFacade interface {
	GetTrialBalance(ctx context.Context, schoolID string) (*domain.TrialBalanceReport, error)
}
