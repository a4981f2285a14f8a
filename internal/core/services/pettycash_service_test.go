package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/core/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindDisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// fakePettyCashRepo is a stateful in-memory repository. Its row lock is a
// mutex held from FindAccountByIDForUpdate until Commit or Rollback, which
// mirrors how SELECT ... FOR UPDATE serializes concurrent postings.
type fakePettyCashRepo struct {
	rowLock sync.Mutex

	heldMu sync.Mutex
	held   bool

	account domain.PettyCashAccount
	txns    []domain.PettyCashTransaction

	pendingTxn     *domain.PettyCashTransaction
	pendingBalance *decimal.Decimal
}

var _ portsrepo.PettyCashRepository = (*fakePettyCashRepo)(nil)

func newFakePettyCashRepo(account domain.PettyCashAccount) *fakePettyCashRepo {
	return &fakePettyCashRepo{account: account}
}

func (f *fakePettyCashRepo) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }

func (f *fakePettyCashRepo) Commit(ctx context.Context, tx pgx.Tx) error {
	if f.pendingTxn != nil {
		f.txns = append(f.txns, *f.pendingTxn)
		f.pendingTxn = nil
	}
	if f.pendingBalance != nil {
		f.account.CurrentBalance = *f.pendingBalance
		f.pendingBalance = nil
	}
	f.release()
	return nil
}

func (f *fakePettyCashRepo) Rollback(ctx context.Context, tx pgx.Tx) error {
	f.pendingTxn = nil
	f.pendingBalance = nil
	f.release()
	return nil
}

func (f *fakePettyCashRepo) release() {
	f.heldMu.Lock()
	defer f.heldMu.Unlock()
	if f.held {
		f.held = false
		f.rowLock.Unlock()
	}
}

func (f *fakePettyCashRepo) SaveAccount(ctx context.Context, account domain.PettyCashAccount) error {
	f.account = account
	return nil
}

func (f *fakePettyCashRepo) ListAccounts(ctx context.Context, schoolID string) ([]domain.PettyCashAccount, error) {
	return []domain.PettyCashAccount{f.account}, nil
}

func (f *fakePettyCashRepo) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.PettyCashAccount, error) {
	f.rowLock.Lock()
	f.heldMu.Lock()
	f.held = true
	f.heldMu.Unlock()

	if accountID != f.account.AccountID {
		return nil, apperrors.ErrNotFound
	}
	account := f.account
	return &account, nil
}

func (f *fakePettyCashRepo) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.PettyCashTransaction) error {
	f.pendingTxn = &txn
	return nil
}

func (f *fakePettyCashRepo) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	f.pendingBalance = &newBalance
	return nil
}

func (f *fakePettyCashRepo) ListTransactions(ctx context.Context, schoolID string, accountID string, limit, offset int) ([]domain.PettyCashTransaction, error) {
	if schoolID != f.account.SchoolID {
		return []domain.PettyCashTransaction{}, nil
	}
	return f.txns, nil
}

// --- Test Suite Setup ---
type PettyCashServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	repo         *fakePettyCashRepo
	service      *services.PettyCashService
	schoolID     string
	userID       string
	accountID    string
}

func (suite *PettyCashServiceTestSuite) SetupTest() {
	suite.schoolID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()

	suite.repo = newFakePettyCashRepo(domain.PettyCashAccount{
		AccountID:      suite.accountID,
		SchoolID:       suite.schoolID,
		CustodianID:    uuid.NewString(),
		FloatAmount:    decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(100),
		IsActive:       true,
	})
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPettyCashService(suite.repo, suite.mockUserRepo)
}

func (suite *PettyCashServiceTestSuite) disburse(amount int64) (*domain.PettyCashTransaction, error) {
	return suite.service.RecordTransaction(context.Background(), suite.schoolID, suite.accountID, dto.RecordPettyCashTransactionRequest{
		TransactionType: "DISBURSE",
		Amount:          decimal.NewFromInt(amount),
		Description:     "stationery",
		TransactionDate: time.Now().UTC(),
	}, suite.userID)
}

func (suite *PettyCashServiceTestSuite) replenish(amount int64) (*domain.PettyCashTransaction, error) {
	return suite.service.RecordTransaction(context.Background(), suite.schoolID, suite.accountID, dto.RecordPettyCashTransactionRequest{
		TransactionType: "REPLENISH",
		Amount:          decimal.NewFromInt(amount),
		Reference:       "CHQ-42",
		TransactionDate: time.Now().UTC(),
	}, suite.userID)
}

// --- Test Cases ---

func (suite *PettyCashServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	custodianID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, custodianID).
		Return(&domain.User{UserID: custodianID, DisplayName: "J. Mwangi"}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.schoolID, dto.CreatePettyCashAccountRequest{
		CustodianID: custodianID,
		FloatAmount: decimal.NewFromInt(200),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(account.CurrentBalance.Equal(account.FloatAmount))
	suite.True(account.IsActive)
	suite.Equal("J. Mwangi", account.CustodianName)
}

func (suite *PettyCashServiceTestSuite) TestCreateAccount_NonPositiveFloat() {
	ctx := context.Background()

	_, err := suite.service.CreateAccount(ctx, suite.schoolID, dto.CreatePettyCashAccountRequest{
		CustodianID: uuid.NewString(),
		FloatAmount: decimal.Zero,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PettyCashServiceTestSuite) TestCreateAccount_CustodianMissing() {
	ctx := context.Background()
	custodianID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, custodianID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.schoolID, dto.CreatePettyCashAccountRequest{
		CustodianID: custodianID,
		FloatAmount: decimal.NewFromInt(200),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_DisburseUpdatesBalance() {
	txn, err := suite.disburse(40)

	suite.Require().NoError(err)
	suite.Equal(domain.Disburse, txn.TransactionType)
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(60)))
	suite.Len(suite.repo.txns, 1)
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_DisburseToExactlyZero() {
	_, err := suite.disburse(100)

	suite.Require().NoError(err)
	suite.True(suite.repo.account.CurrentBalance.IsZero())
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_DisburseExceedsBalance() {
	_, err := suite.disburse(101)

	suite.Require().Error(err)
	var insufficientErr *apperrors.InsufficientBalanceError
	suite.Require().ErrorAs(err, &insufficientErr)
	suite.True(insufficientErr.CurrentBalance.Equal(decimal.NewFromInt(100)))
	suite.True(insufficientErr.Requested.Equal(decimal.NewFromInt(101)))
	suite.ErrorIs(err, apperrors.ErrBusinessRule)

	// The rejection leaves no trace: no transaction row, no balance change.
	suite.Empty(suite.repo.txns)
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_ReplenishExceedsFloat() {
	_, err := suite.disburse(30)
	suite.Require().NoError(err)

	_, err = suite.replenish(31)

	suite.Require().Error(err)
	var floatErr *apperrors.FloatExceededError
	suite.Require().ErrorAs(err, &floatErr)
	suite.True(floatErr.FloatAmount.Equal(decimal.NewFromInt(100)))
	suite.True(floatErr.ResultingBalance.Equal(decimal.NewFromInt(101)))
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(70)))
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_ReplenishToExactlyFloat() {
	_, err := suite.disburse(30)
	suite.Require().NoError(err)

	_, err = suite.replenish(30)

	suite.Require().NoError(err)
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_NonPositiveAmount() {
	_, err := suite.disburse(0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_InactiveAccount() {
	suite.repo.account.IsActive = false

	_, err := suite.disburse(10)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_UnknownAccount() {
	_, err := suite.service.RecordTransaction(context.Background(), suite.schoolID, uuid.NewString(), dto.RecordPettyCashTransactionRequest{
		TransactionType: "DISBURSE",
		Amount:          decimal.NewFromInt(10),
		TransactionDate: time.Now().UTC(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PettyCashServiceTestSuite) TestRecordTransaction_WrongSchool() {
	_, err := suite.service.RecordTransaction(context.Background(), uuid.NewString(), suite.accountID, dto.RecordPettyCashTransactionRequest{
		TransactionType: "DISBURSE",
		Amount:          decimal.NewFromInt(10),
		TransactionDate: time.Now().UTC(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.repo.txns)
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

// Two concurrent disbursements of 60 against a balance of 100: the row lock
// serializes them, so exactly one succeeds and the loser sees the balance the
// winner left behind.
func (suite *PettyCashServiceTestSuite) TestRecordTransaction_ConcurrentDisbursements() {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.disburse(60)
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var insufficientErr *apperrors.InsufficientBalanceError
		suite.Require().ErrorAs(err, &insufficientErr)
		suite.True(insufficientErr.CurrentBalance.Equal(decimal.NewFromInt(40)))
		rejections++
	}

	suite.Equal(1, successes)
	suite.Equal(1, rejections)
	suite.True(suite.repo.account.CurrentBalance.Equal(decimal.NewFromInt(40)))
	suite.Len(suite.repo.txns, 1)
}

func TestPettyCashServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PettyCashServiceTestSuite))
}
