package services

// ServiceContainer bundles all service facades for dependency injection into
// the HTTP layer.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
	Budget    BudgetSvcFacade
	PettyCash PettyCashSvcFacade
}
