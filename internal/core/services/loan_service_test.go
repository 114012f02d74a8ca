package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/core/services"
)

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, savings domain.LoanSavings, financials domain.LoanFinancials) error {
	args := m.Called(ctx, loan, savings, financials)
	return args.Error(0)
}

func (m *MockLoanRepository) AddPayment(ctx context.Context, userID, loanID string, payment domain.LoanPayment) error {
	args := m.Called(ctx, userID, loanID, payment)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, userID, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) GetLoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error) {
	args := m.Called(ctx, userID)
	var savings *domain.LoanSavings
	var financials *domain.LoanFinancials
	if args.Get(0) != nil {
		savings = args.Get(0).(*domain.LoanSavings)
	}
	if args.Get(1) != nil {
		financials = args.Get(1).(*domain.LoanFinancials)
	}
	return savings, financials, args.Error(2)
}

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLoanRepository
	service  portssvc.LoanSvcFacade
	userID   string
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLoanRepository)
	suite.service = services.NewLoanService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *LoanServiceTestSuite) TestCreateLoan_DerivedRecords() {
	ctx := context.Background()
	principal := decimal.NewFromInt(10000)

	suite.mockRepo.On("SaveLoan", ctx,
		mock.MatchedBy(func(l domain.Loan) bool {
			return l.UserID == suite.userID &&
				l.Amount.Equal(principal) &&
				l.Status == domain.LoanActive &&
				l.WeeklyPayment.Equal(decimal.NewFromInt(800)) && // 10000 * 1.2 / 15
				len(l.Payments) == 0 &&
				l.LoanID != ""
		}),
		mock.MatchedBy(func(s domain.LoanSavings) bool {
			return s.Amount.Equal(decimal.NewFromInt(1000)) && // 10%
				s.WeeklyDeposit.Equal(decimal.NewFromInt(1481)) // 14.81%
		}),
		mock.MatchedBy(func(f domain.LoanFinancials) bool {
			return f.Income.Interest.Equal(decimal.NewFromInt(1308)) && // 13.08%
				f.Income.ProcessingFees.Equal(decimal.NewFromInt(500)) && // 5%
				f.Income.OtherIncome.IsZero() &&
				f.Expenses.Commission.Equal(decimal.NewFromInt(500)) && // 5%
				f.Expenses.Transportation.IsZero() &&
				f.Insurance.Equal(decimal.NewFromInt(300)) // 3%
		}),
	).Return(nil).Once()

	loan, err := suite.service.CreateLoan(ctx, suite.userID, principal)

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.Equal("800", loan.WeeklyPayment.String())
	suite.Equal(domain.LoanActive, loan.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_NonPositiveAmount() {
	ctx := context.Background()

	loan, err := suite.service.CreateLoan(ctx, suite.userID, decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestCreateLoan_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan"), mock.AnythingOfType("domain.LoanSavings"), mock.AnythingOfType("domain.LoanFinancials")).Return(expectedErr).Once()

	loan, err := suite.service.CreateLoan(ctx, suite.userID, decimal.NewFromInt(500))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestMakePayment_Success() {
	ctx := context.Background()
	loanID := uuid.NewString()
	amount := decimal.NewFromInt(800)
	reloaded := &domain.Loan{
		LoanID: loanID,
		UserID: suite.userID,
		Amount: decimal.NewFromInt(10000),
		Payments: []domain.LoanPayment{
			{Amount: amount, Date: time.Now().UTC()},
		},
	}

	suite.mockRepo.On("AddPayment", ctx, suite.userID, loanID, mock.MatchedBy(func(p domain.LoanPayment) bool {
		return p.Amount.Equal(amount) && !p.Date.IsZero()
	})).Return(nil).Once()
	suite.mockRepo.On("FindLoanByID", ctx, suite.userID, loanID).Return(reloaded, nil).Once()

	loan, err := suite.service.MakePayment(ctx, suite.userID, loanID, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.Len(loan.Payments, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestMakePayment_NonPositiveAmount() {
	ctx := context.Background()

	loan, err := suite.service.MakePayment(ctx, suite.userID, uuid.NewString(), decimal.NewFromInt(-1))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestMakePayment_LoanNotFound() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockRepo.On("AddPayment", ctx, suite.userID, loanID, mock.AnythingOfType("domain.LoanPayment")).Return(apperrors.ErrNotFound).Once()

	loan, err := suite.service.MakePayment(ctx, suite.userID, loanID, decimal.NewFromInt(100))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestListLoans_EmptyNotNil() {
	ctx := context.Background()
	var none []domain.Loan

	suite.mockRepo.On("ListLoans", ctx, suite.userID).Return(none, nil).Once()

	loans, err := suite.service.ListLoans(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(loans)
	suite.Empty(loans)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestLoanSummary_Success() {
	ctx := context.Background()
	savings := &domain.LoanSavings{
		Amount:        decimal.NewFromInt(1000),
		WeeklyDeposit: decimal.NewFromInt(1481),
	}
	financials := &domain.LoanFinancials{
		Income:    domain.LoanIncome{Interest: decimal.NewFromInt(1308)},
		Insurance: decimal.NewFromInt(300),
	}

	suite.mockRepo.On("GetLoanSummary", ctx, suite.userID).Return(savings, financials, nil).Once()

	gotSavings, gotFinancials, err := suite.service.LoanSummary(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(savings, gotSavings)
	suite.Equal(financials, gotFinancials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestLoanSummary_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetLoanSummary", ctx, suite.userID).Return(nil, nil, expectedErr).Once()

	gotSavings, gotFinancials, err := suite.service.LoanSummary(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(gotSavings)
	suite.Nil(gotFinancials)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLoanService(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
