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
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:              decimal.NewFromFloat(45.50),
		Type:                "expense",
		Category:            "Food",
		Description:         "Lunch",
		PaymentMethod:       "mobileMoney",
		MobileMoneyProvider: "MTN",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.UserID == suite.userID &&
			t.Amount.Equal(req.Amount) &&
			t.Type == domain.Expense &&
			t.Category == req.Category &&
			t.PaymentMethod == domain.PaymentMobileMoney &&
			t.MobileMoneyProvider == "MTN" &&
			t.TransactionID != "" &&
			t.CreatedBy == suite.userID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(req.Category, txn.Category)
	suite.False(txn.Date.IsZero(), "date should default to now when omitted")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExplicitDateKept() {
	ctx := context.Background()
	date := time.Date(2025, time.April, 2, 10, 30, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(20),
		Type:          "income",
		Category:      "Gifts",
		Date:          &date,
		PaymentMethod: "cash",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(txn.Date.Equal(date))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ProviderClearedForNonMobileMoney() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:              decimal.NewFromInt(10),
		Type:                "expense",
		Category:            "Transport",
		PaymentMethod:       "cash",
		MobileMoneyProvider: "MTN", // Stale client value; must not survive
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.MobileMoneyProvider == ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Empty(txn.MobileMoneyProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		req := dto.CreateTransactionRequest{
			Amount:        amount,
			Type:          "expense",
			Category:      "Food",
			PaymentMethod: "cash",
		}

		txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

		suite.Require().Error(err)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:        decimal.NewFromInt(10),
		Type:          "expense",
		Category:      "Food",
		PaymentMethod: "cash",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(expectedErr).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, transactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, transactionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), Category: "Food"},
		{TransactionID: uuid.NewString(), Category: "Transport"},
	}

	suite.mockRepo.On("ListTransactions", ctx, suite.userID, 50, 0).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, 50, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyNotNil() {
	ctx := context.Background()
	var none []domain.Transaction

	suite.mockRepo.On("ListTransactions", ctx, suite.userID, 50, 0).Return(none, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, 50, 0)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListTransactions", ctx, suite.userID, 50, 0).Return(nil, expectedErr).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, 50, 0)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
