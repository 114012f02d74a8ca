package localstore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// BudgetRepository is the blob-backed budget collection.
type BudgetRepository struct {
	store *Store
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

// adjustBudgetSpent applies a signed delta to the spent total of the budget
// matching (userID, category), floored at zero. Callers must hold the store
// lock. Having no budget in the category is not an error.
func adjustBudgetSpent(s *Store, userID, category string, delta decimal.Decimal) error {
	budgets := readCollection[domain.Budget](s, budgetsFile)
	changed := false
	for i := range budgets {
		if budgets[i].UserID == userID && budgets[i].Category == category {
			next := budgets[i].Spent.Add(delta)
			if next.IsNegative() {
				next = decimal.Zero
			}
			budgets[i].Spent = next
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	return writeCollection(s, budgetsFile, budgets)
}

// SaveBudget appends a new budget. The category is unique per user.
func (r *BudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	budgets := readCollection[domain.Budget](r.store, budgetsFile)
	for _, existing := range budgets {
		if existing.UserID == budget.UserID && existing.Category == budget.Category {
			return fmt.Errorf("%w: budget for category %s already exists", apperrors.ErrDuplicate, budget.Category)
		}
	}
	budgets = append(budgets, budget)
	return writeCollection(r.store, budgetsFile, budgets)
}

// FindBudgetByID retrieves a single budget owned by userID.
func (r *BudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range readCollection[domain.Budget](r.store, budgetsFile) {
		if b.BudgetID == budgetID && b.UserID == userID {
			return &b, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindBudgetByCategory retrieves the user's budget for a category, if any.
func (r *BudgetRepository) FindBudgetByCategory(ctx context.Context, userID, category string) (*domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, b := range readCollection[domain.Budget](r.store, budgetsFile) {
		if b.UserID == userID && b.Category == category {
			return &b, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListBudgets retrieves all budgets for a user in insertion order.
func (r *BudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var results []domain.Budget
	for _, b := range readCollection[domain.Budget](r.store, budgetsFile) {
		if b.UserID == userID {
			results = append(results, b)
		}
	}
	return results, nil
}

// DeleteBudget removes a budget by id. Historical transactions in the
// category stay in the ledger.
func (r *BudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	budgets := readCollection[domain.Budget](r.store, budgetsFile)
	for i, b := range budgets {
		if b.BudgetID == budgetID && b.UserID == userID {
			budgets = append(budgets[:i], budgets[i+1:]...)
			return writeCollection(r.store, budgetsFile, budgets)
		}
	}
	return errNotFound("budget", budgetID)
}
