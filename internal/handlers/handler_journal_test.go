package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portssvc "github.com/sams-dev/school_accounting_app/internal/core/ports/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/sams-dev/school_accounting_app/internal/handlers"
	"github.com/sams-dev/school_accounting_app/internal/middleware"
	"github.com/sams-dev/school_accounting_app/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) ListAccounts(ctx context.Context, schoolID string) ([]domain.Account, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, schoolID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, schoolID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SeedDefaultAccounts(ctx context.Context, schoolID string, userID string) error {
	args := m.Called(ctx, schoolID, userID)
	return args.Error(0)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, schoolID string, accountID string, userID string) error {
	args := m.Called(ctx, schoolID, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, schoolID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, schoolID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostJournalEntry(ctx context.Context, schoolID string, req dto.PostJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, schoolID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalEntry(ctx context.Context, schoolID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, schoolID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, schoolID string, limit, offset int) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, schoolID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetGeneralLedger(ctx context.Context, schoolID string, params dto.GeneralLedgerParams) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, schoolID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) GetTrialBalance(ctx context.Context, schoolID string) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func (m *MockBudgetService) GetBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error) {
	args := m.Called(ctx, schoolID, term, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) SetBudget(ctx context.Context, schoolID string, req dto.SetBudgetRequest, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, schoolID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockBudgetService) CreateCategory(ctx context.Context, schoolID string, req dto.CreateCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, schoolID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

// --- Mock PettyCashService ---
type MockPettyCashService struct {
	mock.Mock
}

var _ portssvc.PettyCashSvcFacade = (*MockPettyCashService)(nil)

func (m *MockPettyCashService) CreateAccount(ctx context.Context, schoolID string, req dto.CreatePettyCashAccountRequest, userID string) (*domain.PettyCashAccount, error) {
	args := m.Called(ctx, schoolID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PettyCashAccount), args.Error(1)
}

func (m *MockPettyCashService) ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PettyCashAccount), args.Error(1)
}

func (m *MockPettyCashService) RecordTransaction(ctx context.Context, schoolID string, accountID string, req dto.RecordPettyCashTransactionRequest, userID string) (*domain.PettyCashTransaction, error) {
	args := m.Called(ctx, schoolID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PettyCashTransaction), args.Error(1)
}

func (m *MockPettyCashService) ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error) {
	args := m.Called(ctx, schoolID, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PettyCashTransaction), args.Error(1)
}

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAccountSvc   *MockAccountService
	mockJournalSvc   *MockJournalService
	mockLedgerSvc    *MockLedgerService
	mockReportingSvc *MockReportingService
	mockBudgetSvc    *MockBudgetService
	mockPettyCashSvc *MockPettyCashService
	jwtSecret        string
	schoolID         string
	userID           string
}

// generateTestToken signs a JWT carrying the subject and school claim the auth
// middleware expects.
func (suite *JournalHandlerTestSuite) generateTestToken(userID, schoolID string) string {
	claims := middleware.AccountingClaims{
		SchoolID: schoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sams-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.schoolID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockAccountSvc = new(MockAccountService)
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockReportingSvc = new(MockReportingService)
	suite.mockBudgetSvc = new(MockBudgetService)
	suite.mockPettyCashSvc = new(MockPettyCashService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Account:   suite.mockAccountSvc,
		Journal:   suite.mockJournalSvc,
		Ledger:    suite.mockLedgerSvc,
		Reporting: suite.mockReportingSvc,
		Budget:    suite.mockBudgetSvc,
		PettyCash: suite.mockPettyCashSvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// doJSON issues an authenticated request with an optional JSON body.
func (suite *JournalHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, suite.schoolID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *JournalHandlerTestSuite) TestPostJournalEntry_Success() {
	entryID := uuid.NewString()
	accountID := uuid.NewString()
	entryDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	req := dto.PostJournalEntryRequest{
		EntryDate:   entryDate,
		Reference:   "RCPT-001",
		Description: "Term 1 fees",
		Lines: []dto.JournalLineRequest{
			{AccountID: accountID, Debit: decimal.NewFromInt(500)},
			{AccountID: accountID, Credit: decimal.NewFromInt(500)},
		},
	}
	entry := &domain.JournalEntry{
		EntryID:   entryID,
		SchoolID:  suite.schoolID,
		EntryDate: entryDate,
		Reference: "RCPT-001",
		Status:    domain.Posted,
		CreatedBy: suite.userID,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: accountID, Debit: decimal.NewFromInt(500)},
			{LineID: uuid.NewString(), EntryID: entryID, AccountID: accountID, Credit: decimal.NewFromInt(500)},
		},
	}

	suite.mockJournalSvc.On("PostJournalEntry",
		mock.Anything, suite.schoolID,
		mock.AnythingOfType("dto.PostJournalEntryRequest"),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounting/journal-entries", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entryID, resp.EntryID)
	suite.Equal("POSTED", resp.Status)
	suite.Len(resp.Lines, 2)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestPostJournalEntry_UnbalancedReturns400WithTotals() {
	req := dto.PostJournalEntryRequest{
		EntryDate: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(500)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(300)},
		},
	}

	suite.mockJournalSvc.On("PostJournalEntry", mock.Anything, suite.schoolID, mock.Anything, suite.userID).
		Return(nil, &apperrors.UnbalancedEntryError{
			TotalDebit:  decimal.NewFromInt(500),
			TotalCredit: decimal.NewFromInt(300),
		}).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounting/journal-entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Error   string `json:"error"`
		Details struct {
			TotalDebit  decimal.Decimal `json:"totalDebit"`
			TotalCredit decimal.Decimal `json:"totalCredit"`
		} `json:"details"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body.Error, "unbalanced")
	suite.True(body.Details.TotalDebit.Equal(decimal.NewFromInt(500)))
	suite.True(body.Details.TotalCredit.Equal(decimal.NewFromInt(300)))
}

func (suite *JournalHandlerTestSuite) TestGetJournalEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockJournalSvc.On("GetJournalEntry", mock.Anything, suite.schoolID, entryID).
		Return(nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/accounting/journal-entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestListJournalEntries_PassesPaging() {
	suite.mockJournalSvc.On("ListJournalEntries", mock.Anything, suite.schoolID, 10, 20).
		Return(&dto.ListJournalEntriesResponse{Data: []dto.JournalEntryResponse{}, Total: 42}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/accounting/journal-entries?limit=10&offset=20", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.Total)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestPostJournalEntry_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounting/journal-entries", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, suite.schoolID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostJournalEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounting/journal-entries", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *JournalHandlerTestSuite) TestTokenWithoutSchoolClaim() {
	claims := jwt.RegisteredClaims{
		Subject:   suite.userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounting/journal-entries", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *JournalHandlerTestSuite) TestCreateAccount_DuplicateCodeReturns409() {
	req := dto.CreateAccountRequest{AccountCode: "1000", AccountName: "Cash", AccountType: "ASSET"}

	suite.mockAccountSvc.On("CreateAccount", mock.Anything, suite.schoolID, req, suite.userID).
		Return(nil, &apperrors.DuplicateAccountCodeError{AccountCode: "1000"}).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounting/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
	var body struct {
		Details struct {
			AccountCode string `json:"accountCode"`
		} `json:"details"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("1000", body.Details.AccountCode)
}

func (suite *JournalHandlerTestSuite) TestRecordPettyCashTransaction_InsufficientBalanceReturns422() {
	accountID := uuid.NewString()
	req := dto.RecordPettyCashTransactionRequest{
		TransactionType: "DISBURSE",
		Amount:          decimal.NewFromInt(900),
		TransactionDate: time.Now().UTC(),
	}

	suite.mockPettyCashSvc.On("RecordTransaction", mock.Anything, suite.schoolID, accountID, mock.Anything, suite.userID).
		Return(nil, &apperrors.InsufficientBalanceError{
			CurrentBalance: decimal.NewFromInt(100),
			Requested:      decimal.NewFromInt(900),
		}).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounting/petty-cash/"+accountID+"/transactions", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Details struct {
			CurrentBalance decimal.Decimal `json:"currentBalance"`
			Requested      decimal.Decimal `json:"requested"`
		} `json:"details"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Details.CurrentBalance.Equal(decimal.NewFromInt(100)))
	suite.True(body.Details.Requested.Equal(decimal.NewFromInt(900)))
}

func (suite *JournalHandlerTestSuite) TestGetTrialBalance_Success() {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1000", AccountType: domain.Asset, TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.Zero},
			{AccountCode: "4000", AccountType: domain.Revenue, TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(500)},
		},
		TotalDebit:  decimal.NewFromInt(500),
		TotalCredit: decimal.NewFromInt(500),
		Balanced:    true,
	}

	suite.mockReportingSvc.On("GetTrialBalance", mock.Anything, suite.schoolID).Return(report, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/accounting/trial-balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balanced)
	suite.Len(resp.Rows, 2)
}

func (suite *JournalHandlerTestSuite) TestGetGeneralLedger_BadDateFormat() {
	w := suite.doJSON(http.MethodGet, "/api/v1/accounting/ledger?start=10-02-2026", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "GetGeneralLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestHealthIsUnauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func TestJournalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
