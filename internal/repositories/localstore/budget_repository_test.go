package localstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

func newBudget(userID, category string, amount int64) domain.Budget {
	return domain.Budget{
		BudgetID:       uuid.NewString(),
		UserID:         userID,
		Category:       category,
		Amount:         decimal.NewFromInt(amount),
		Spent:          decimal.Zero,
		Period:         domain.PeriodMonthly,
		AlertThreshold: domain.DefaultAlertThreshold,
	}
}

func TestSaveBudget_DuplicateCategoryPerUser(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, newBudget(userID, "Food", 500)))
	err := repos.BudgetRepo.SaveBudget(ctx, newBudget(userID, "Food", 300))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// A different user may budget the same category.
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, newBudget(uuid.NewString(), "Food", 300)))
}

func TestFindBudgetByCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)

	_, err := repos.BudgetRepo.FindBudgetByCategory(ctx, uuid.NewString(), "Food")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBudget_KeepsLedger(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()
	budget := newBudget(userID, "Food", 500)
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, budget))

	txn := newExpense(userID, "Food", 80, budget.CreatedAt)
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))

	require.NoError(t, repos.BudgetRepo.DeleteBudget(ctx, userID, budget.BudgetID))

	_, err := repos.BudgetRepo.FindBudgetByID(ctx, userID, budget.BudgetID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	txns, err := repos.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestDeleteBudget_NotFound(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)

	err := repos.BudgetRepo.DeleteBudget(ctx, uuid.NewString(), uuid.NewString())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListBudgets_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	alice := uuid.NewString()
	bob := uuid.NewString()

	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, newBudget(alice, "Food", 500)))
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, newBudget(alice, "Transport", 200)))
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, newBudget(bob, "Food", 100)))

	budgets, err := repos.BudgetRepo.ListBudgets(ctx, alice)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, "Transport", budgets[1].Category)
}
