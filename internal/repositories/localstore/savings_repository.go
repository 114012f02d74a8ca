package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// SavingsRepository is the blob-backed savings goal collection.
type SavingsRepository struct {
	store *Store
}

var _ portsrepo.SavingsRepositoryFacade = (*SavingsRepository)(nil)

// SaveSavingsGoal appends a new goal.
func (r *SavingsRepository) SaveSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	goals := readCollection[domain.SavingsGoal](r.store, savingsGoalsFile)
	for _, existing := range goals {
		if existing.GoalID == goal.GoalID {
			return fmt.Errorf("%w: savings goal %s already exists", apperrors.ErrDuplicate, goal.GoalID)
		}
	}
	goals = append(goals, goal)
	return writeCollection(r.store, savingsGoalsFile, goals)
}

// AddContribution increments the goal's current amount, appends the synthetic
// Savings expense to the ledger and bumps a matching budget, all under one
// hold of the store lock.
func (r *SavingsRepository) AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	goals := readCollection[domain.SavingsGoal](r.store, savingsGoalsFile)
	idx := -1
	for i := range goals {
		if goals[i].GoalID == goalID && goals[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errNotFound("savings goal", goalID)
	}
	goals[idx].CurrentAmount = goals[idx].CurrentAmount.Add(amount)
	goals[idx].LastUpdatedAt = time.Now().UTC()
	if err := writeCollection(r.store, savingsGoalsFile, goals); err != nil {
		return err
	}

	txns := readCollection[domain.Transaction](r.store, transactionsFile)
	txns = append(txns, txn)
	if err := writeCollection(r.store, transactionsFile, txns); err != nil {
		return err
	}

	return adjustBudgetSpent(r.store, userID, txn.Category, txn.Amount)
}

// FindSavingsGoalByID retrieves a single goal owned by userID.
func (r *SavingsRepository) FindSavingsGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, g := range readCollection[domain.SavingsGoal](r.store, savingsGoalsFile) {
		if g.GoalID == goalID && g.UserID == userID {
			return &g, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListSavingsGoals retrieves all goals for a user in insertion order.
func (r *SavingsRepository) ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var results []domain.SavingsGoal
	for _, g := range readCollection[domain.SavingsGoal](r.store, savingsGoalsFile) {
		if g.UserID == userID {
			results = append(results, g)
		}
	}
	return results, nil
}

// DeleteSavingsGoal removes a goal by id. Contribution transactions already
// in the ledger are untouched.
func (r *SavingsRepository) DeleteSavingsGoal(ctx context.Context, userID, goalID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	goals := readCollection[domain.SavingsGoal](r.store, savingsGoalsFile)
	for i, g := range goals {
		if g.GoalID == goalID && g.UserID == userID {
			goals = append(goals[:i], goals[i+1:]...)
			return writeCollection(r.store, savingsGoalsFile, goals)
		}
	}
	return errNotFound("savings goal", goalID)
}
