package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// SavingsReader defines read operations for savings goals.
type SavingsReader interface {
	// FindSavingsGoalByID retrieves a single goal owned by userID.
	FindSavingsGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error)

	// ListSavingsGoals retrieves all goals for a user.
	ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsWriter defines write operations for savings goals.
type SavingsWriter interface {
	// SaveSavingsGoal persists a new goal.
	SaveSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error

	// AddContribution increments the goal's current amount and records the
	// synthetic Savings expense transaction (bumping a matching budget like
	// any other expense) as one storage unit.
	AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal, txn domain.Transaction) error

	// DeleteSavingsGoal removes a goal by id. Contribution transactions
	// already in the ledger are untouched.
	DeleteSavingsGoal(ctx context.Context, userID, goalID string) error
}

// SavingsRepositoryFacade combines all savings repository interfaces.
type SavingsRepositoryFacade interface {
	SavingsReader
	SavingsWriter
}

// SavingsRepositoryWithTx extends the facade with transaction capabilities.
type SavingsRepositoryWithTx interface {
	SavingsRepositoryFacade
	TransactionManager
}
