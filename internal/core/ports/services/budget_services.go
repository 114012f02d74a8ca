package services

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets.
type BudgetReaderSvc interface {
	// ListBudgets returns all budgets for a user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// BudgetAlerts returns the alerts for every budget consumed past its
	// threshold.
	BudgetAlerts(ctx context.Context, userID string) ([]domain.BudgetAlert, error)
}

// BudgetWriterSvc defines write operations for budgets.
type BudgetWriterSvc interface {
	// CreateBudget creates a budget for a not-yet-budgeted category.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget by id.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetSvcFacade combines all budget service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
