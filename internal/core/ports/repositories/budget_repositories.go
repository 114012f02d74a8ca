package repositories

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	// FindBudgetByID retrieves a single budget owned by userID.
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// FindBudgetByCategory retrieves the user's budget for a category, if any.
	FindBudgetByCategory(ctx context.Context, userID, category string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets for a user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget by id. Historical transactions in the
	// category are untouched.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}

// BudgetRepositoryWithTx extends the facade with transaction capabilities.
type BudgetRepositoryWithTx interface {
	BudgetRepositoryFacade
	TransactionManager
}
