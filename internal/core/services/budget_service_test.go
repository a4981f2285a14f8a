package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sams-dev/school_accounting_app/internal/apperrors"
	"github.com/sams-dev/school_accounting_app/internal/core/domain"
	portsrepo "github.com/sams-dev/school_accounting_app/internal/core/ports/repositories"
	"github.com/sams-dev/school_accounting_app/internal/core/services"
	"github.com/sams-dev/school_accounting_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepository = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, schoolID string, term, year int) ([]domain.Budget, error) {
	args := m.Called(ctx, schoolID, term, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockBudgetRepository) ListCategories(ctx context.Context, schoolID string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockBudgetRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite Setup ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockBudgetRepository
	service    *services.BudgetService
	schoolID   string
	userID     string
	categoryID string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
	suite.schoolID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) ownCategory() *domain.ExpenseCategory {
	return &domain.ExpenseCategory{
		CategoryID: suite.categoryID,
		SchoolID:   suite.schoolID,
		Name:       "Transport",
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestSetBudget_Success() {
	ctx := context.Background()
	req := dto.SetBudgetRequest{
		CategoryID:      suite.categoryID,
		Term:            2,
		Year:            2026,
		AmountAllocated: decimal.NewFromInt(50000),
		Notes:           "bus fuel and maintenance",
	}

	suite.mockRepo.On("FindCategoryByID", ctx, suite.categoryID).Return(suite.ownCategory(), nil).Once()
	suite.mockRepo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Run(func(args mock.Arguments) {
			budget := args.Get(1).(domain.Budget)
			suite.Equal(suite.schoolID, budget.SchoolID)
			suite.Equal(2, budget.Term)
			suite.Equal(2026, budget.Year)
			suite.True(budget.AmountSpent.IsZero())
		}).
		Return(&domain.Budget{
			BudgetID:        uuid.NewString(),
			SchoolID:        suite.schoolID,
			CategoryID:      suite.categoryID,
			Term:            2,
			Year:            2026,
			AmountAllocated: req.AmountAllocated,
			AmountSpent:     decimal.Zero,
		}, nil).Once()

	budget, err := suite.service.SetBudget(ctx, suite.schoolID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Transport", budget.CategoryName)
	suite.True(budget.AmountAllocated.Equal(decimal.NewFromInt(50000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

// Allocation magnitude is unbounded here: negative and zero allocations pass
// straight through to the upsert.
func (suite *BudgetServiceTestSuite) TestSetBudget_NegativeAllocationAllowed() {
	ctx := context.Background()
	req := dto.SetBudgetRequest{
		CategoryID:      suite.categoryID,
		Term:            1,
		Year:            2026,
		AmountAllocated: decimal.NewFromInt(-500),
	}

	suite.mockRepo.On("FindCategoryByID", ctx, suite.categoryID).Return(suite.ownCategory(), nil).Once()
	suite.mockRepo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Run(func(args mock.Arguments) {
			budget := args.Get(1).(domain.Budget)
			suite.True(budget.AmountAllocated.Equal(decimal.NewFromInt(-500)))
		}).
		Return(&domain.Budget{CategoryID: suite.categoryID, AmountAllocated: decimal.NewFromInt(-500)}, nil).Once()

	budget, err := suite.service.SetBudget(ctx, suite.schoolID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(budget.AmountAllocated.Equal(decimal.NewFromInt(-500)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSetBudget_CategoryFromAnotherSchool() {
	ctx := context.Background()
	req := dto.SetBudgetRequest{
		CategoryID:      suite.categoryID,
		Term:            1,
		Year:            2026,
		AmountAllocated: decimal.NewFromInt(100),
	}

	foreign := suite.ownCategory()
	foreign.SchoolID = uuid.NewString()
	suite.mockRepo.On("FindCategoryByID", ctx, suite.categoryID).Return(foreign, nil).Once()

	_, err := suite.service.SetBudget(ctx, suite.schoolID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestSetBudget_ZeroAllocationAllowed() {
	ctx := context.Background()
	req := dto.SetBudgetRequest{
		CategoryID:      suite.categoryID,
		Term:            3,
		Year:            2026,
		AmountAllocated: decimal.Zero,
	}

	suite.mockRepo.On("FindCategoryByID", ctx, suite.categoryID).Return(suite.ownCategory(), nil).Once()
	suite.mockRepo.On("UpsertBudget", ctx, mock.AnythingOfType("domain.Budget")).
		Return(&domain.Budget{CategoryID: suite.categoryID, AmountAllocated: decimal.Zero}, nil).Once()

	_, err := suite.service.SetBudget(ctx, suite.schoolID, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *BudgetServiceTestSuite) TestGetBudgets_InvalidTerm() {
	ctx := context.Background()

	_, err := suite.service.GetBudgets(ctx, suite.schoolID, 4, 2026)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetBudgets_MissingYear() {
	ctx := context.Background()

	_, err := suite.service.GetBudgets(ctx, suite.schoolID, 1, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateCategory_Duplicate() {
	ctx := context.Background()
	dupErr := apperrors.ErrDuplicate

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.ExpenseCategory")).Return(dupErr).Once()

	_, err := suite.service.CreateCategory(ctx, suite.schoolID, dto.CreateCategoryRequest{Name: "Transport"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
