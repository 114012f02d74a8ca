package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

func newTestProvider(t *testing.T) (portsrepo.RepositoryProvider, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return NewRepositoryProvider(store), dir
}

func newExpense(userID, category string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(amount),
		Type:          domain.Expense,
		Category:      category,
		Date:          date,
		PaymentMethod: domain.PaymentCash,
	}
}

func TestSaveTransaction_ExpenseBumpsBudgetSpent(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Spent:    decimal.Zero,
	}))

	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, newExpense(userID, "Food", 85, time.Now().UTC())))

	budget, err := repos.BudgetRepo.FindBudgetByCategory(ctx, userID, "Food")
	require.NoError(t, err)
	assert.Equal(t, "85", budget.Spent.String())
}

func TestSaveTransaction_IncomeLeavesBudgetAlone(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Spent:    decimal.Zero,
	}))

	txn := newExpense(userID, "Food", 100, time.Now().UTC())
	txn.Type = domain.Income
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))

	budget, err := repos.BudgetRepo.FindBudgetByCategory(ctx, userID, "Food")
	require.NoError(t, err)
	assert.True(t, budget.Spent.IsZero())
}

func TestSaveTransaction_NoBudgetInCategoryIsFine(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	err := repos.TransactionRepo.SaveTransaction(ctx, newExpense(userID, "Unbudgeted", 40, time.Now().UTC()))

	require.NoError(t, err)
	txns, err := repos.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestSaveTransaction_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	txn := newExpense(uuid.NewString(), "Food", 10, time.Now().UTC())

	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))
	err := repos.TransactionRepo.SaveTransaction(ctx, txn)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeleteTransaction_UnwindsBudgetSpent(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Spent:    decimal.Zero,
	}))

	first := newExpense(userID, "Food", 50, time.Now().UTC())
	second := newExpense(userID, "Food", 35, time.Now().UTC())
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, first))
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, second))

	require.NoError(t, repos.TransactionRepo.DeleteTransaction(ctx, userID, first.TransactionID))

	budget, err := repos.BudgetRepo.FindBudgetByCategory(ctx, userID, "Food")
	require.NoError(t, err)
	assert.Equal(t, "35", budget.Spent.String())
}

func TestDeleteTransaction_SpentFlooredAtZero(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()

	// The expense predates the budget, so spent never accounted for it.
	txn := newExpense(userID, "Food", 50, time.Now().UTC())
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))
	require.NoError(t, repos.BudgetRepo.SaveBudget(ctx, domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: "Food",
		Amount:   decimal.NewFromInt(500),
		Spent:    decimal.NewFromInt(10),
	}))

	require.NoError(t, repos.TransactionRepo.DeleteTransaction(ctx, userID, txn.TransactionID))

	budget, err := repos.BudgetRepo.FindBudgetByCategory(ctx, userID, "Food")
	require.NoError(t, err)
	assert.True(t, budget.Spent.IsZero())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)

	err := repos.TransactionRepo.DeleteTransaction(ctx, uuid.NewString(), uuid.NewString())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteTransaction_WrongOwner(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	txn := newExpense(uuid.NewString(), "Food", 10, time.Now().UTC())
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))

	err := repos.TransactionRepo.DeleteTransaction(ctx, uuid.NewString(), txn.TransactionID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListTransactions_OrderAndPaging(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	userID := uuid.NewString()
	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

	oldest := newExpense(userID, "Food", 10, base)
	middle := newExpense(userID, "Food", 20, base.AddDate(0, 0, 1))
	newest := newExpense(userID, "Food", 30, base.AddDate(0, 0, 2))
	for _, txn := range []domain.Transaction{middle, oldest, newest} {
		require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))
	}

	all, err := repos.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.TransactionID, all[0].TransactionID)
	assert.Equal(t, oldest.TransactionID, all[2].TransactionID)

	page, err := repos.TransactionRepo.ListTransactions(ctx, userID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, middle.TransactionID, page[0].TransactionID)
	assert.Equal(t, oldest.TransactionID, page[1].TransactionID)

	empty, err := repos.TransactionRepo.ListTransactions(ctx, userID, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListTransactions_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestProvider(t)
	alice := uuid.NewString()
	bob := uuid.NewString()

	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, newExpense(alice, "Food", 10, time.Now().UTC())))
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, newExpense(bob, "Food", 20, time.Now().UTC())))

	txns, err := repos.TransactionRepo.ListTransactions(ctx, alice, 0, 0)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, alice, txns[0].UserID)
}

func TestReadCollection_CorruptBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	repos, dir := newTestProvider(t)
	userID := uuid.NewString()

	require.NoError(t, os.WriteFile(filepath.Join(dir, transactionsFile), []byte("{not json"), 0o644))

	txns, err := repos.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, txns)

	// The store recovers: the next write replaces the corrupt blob.
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, newExpense(userID, "Food", 10, time.Now().UTC())))
	txns, err = repos.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	repos := NewRepositoryProvider(store)
	userID := uuid.NewString()
	txn := newExpense(userID, "Food", 42, time.Now().UTC())
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, txn))

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	repos2 := NewRepositoryProvider(reopened)

	txns, err := repos2.TransactionRepo.ListTransactions(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.TransactionID, txns[0].TransactionID)
	assert.True(t, txns[0].Amount.Equal(txn.Amount))
}
