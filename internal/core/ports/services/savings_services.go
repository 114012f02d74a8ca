package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// SavingsReaderSvc defines read operations for savings goals.
type SavingsReaderSvc interface {
	// ListSavingsGoals returns all goals for a user.
	ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsWriterSvc defines write operations for savings goals.
type SavingsWriterSvc interface {
	// CreateSavingsGoal creates a goal with a zero current amount.
	CreateSavingsGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error)

	// Contribute adds to a goal and records the synthetic Savings expense;
	// both effects are applied as one unit.
	Contribute(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error)

	// DeleteSavingsGoal removes a goal by id.
	DeleteSavingsGoal(ctx context.Context, userID, goalID string) error
}

// SavingsSvcFacade combines all savings service interfaces.
type SavingsSvcFacade interface {
	SavingsReaderSvc
	SavingsWriterSvc
}
