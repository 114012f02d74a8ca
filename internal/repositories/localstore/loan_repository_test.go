package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/utils/finance"
)

func newLoan(userID string, principal int64) (domain.Loan, domain.LoanSavings, domain.LoanFinancials) {
	amount := decimal.NewFromInt(principal)
	loan := domain.Loan{
		LoanID:        uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		StartDate:     time.Now().UTC(),
		Status:        domain.LoanActive,
		WeeklyPayment: finance.WeeklyPayment(amount),
		Payments:      []domain.LoanPayment{},
	}
	return loan, finance.DeriveLoanSavings(amount), finance.DeriveLoanFinancials(amount)
}

func TestSaveLoan_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()
	loan, savings, financials := newLoan(userID, 10000)

	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, loan, savings, financials))

	found, err := repos.LoanRepo.FindLoanByID(ctx, userID, loan.LoanID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(loan.Amount))
	assert.Equal(t, "800", found.WeeklyPayment.String())
	assert.Empty(t, found.Payments)
}

func TestSaveLoan_Duplicate(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	loan, savings, financials := newLoan(uuid.NewString(), 1000)

	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, loan, savings, financials))
	err := repos.LoanRepo.SaveLoan(ctx, loan, savings, financials)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAddPayment_GrowsSavingsByWeeklyDeposit(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()
	loan, savings, financials := newLoan(userID, 10000)
	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, loan, savings, financials))

	// The payment amount is irrelevant to savings growth; only the fixed
	// weekly deposit moves the balance.
	payment := domain.LoanPayment{Amount: decimal.NewFromInt(5), Date: time.Now().UTC()}
	require.NoError(t, repos.LoanRepo.AddPayment(ctx, userID, loan.LoanID, payment))

	gotSavings, _, err := repos.LoanRepo.GetLoanSummary(ctx, userID)
	require.NoError(t, err)
	// 1000 initial + 1481 weekly deposit
	assert.Equal(t, "2481", gotSavings.Amount.String())

	found, err := repos.LoanRepo.FindLoanByID(ctx, userID, loan.LoanID)
	require.NoError(t, err)
	require.Len(t, found.Payments, 1)
	assert.True(t, found.Payments[0].Amount.Equal(payment.Amount))
}

func TestAddPayment_LoanNotFound(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)

	err := repos.LoanRepo.AddPayment(ctx, uuid.NewString(), uuid.NewString(), domain.LoanPayment{
		Amount: decimal.NewFromInt(100),
		Date:   time.Now().UTC(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetLoanSummary_SumsAcrossLoans(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	first, firstSavings, firstFinancials := newLoan(userID, 10000)
	second, secondSavings, secondFinancials := newLoan(userID, 5000)
	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, first, firstSavings, firstFinancials))
	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, second, secondSavings, secondFinancials))

	savings, financials, err := repos.LoanRepo.GetLoanSummary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "1500", savings.Amount.String())          // 10% of 15000
	assert.Equal(t, "2221.5", savings.WeeklyDeposit.String()) // 14.81% of 15000
	assert.Equal(t, "1962", financials.Income.Interest.String())
	assert.Equal(t, "750", financials.Income.ProcessingFees.String())
	assert.Equal(t, "750", financials.Expenses.Commission.String())
	assert.Equal(t, "450", financials.Insurance.String())
}

func TestGetLoanSummary_NoLoansIsZero(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)

	savings, financials, err := repos.LoanRepo.GetLoanSummary(ctx, uuid.NewString())

	require.NoError(t, err)
	assert.True(t, savings.Amount.IsZero())
	assert.True(t, savings.WeeklyDeposit.IsZero())
	assert.True(t, financials.Insurance.IsZero())
}

func TestListLoans_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	alice := uuid.NewString()
	bob := uuid.NewString()

	aliceLoan, s1, f1 := newLoan(alice, 1000)
	bobLoan, s2, f2 := newLoan(bob, 2000)
	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, aliceLoan, s1, f1))
	require.NoError(t, repos.LoanRepo.SaveLoan(ctx, bobLoan, s2, f2))

	loans, err := repos.LoanRepo.ListLoans(ctx, alice)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, aliceLoan.LoanID, loans[0].LoanID)
}
