package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// savingsService manages savings goals and their contributions.
type savingsService struct {
	BaseService
	savingsRepo portsrepo.SavingsRepositoryFacade
}

// NewSavingsService creates a new savings service.
func NewSavingsService(repo portsrepo.SavingsRepositoryFacade) portssvc.SavingsSvcFacade {
	return &savingsService{savingsRepo: repo}
}

var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

// CreateSavingsGoal creates a goal with a zero current amount. The deadline
// defaults to 90 days out when omitted.
func (s *savingsService) CreateSavingsGoal(ctx context.Context, userID string, req dto.CreateSavingsGoalRequest) (*domain.SavingsGoal, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	deadline := now.Add(domain.DefaultGoalDeadline)
	if req.Deadline != nil {
		deadline = req.Deadline.UTC()
	}

	goal := domain.SavingsGoal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Color:         req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.savingsRepo.SaveSavingsGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save savings goal", slog.String("name", goal.Name))
		return nil, fmt.Errorf("failed to save savings goal: %w", err)
	}

	s.LogInfo(ctx, "Savings goal created", slog.String("goal_id", goal.GoalID), slog.String("name", goal.Name))
	return &goal, nil
}

// Contribute adds to a goal's current amount and records the matching
// synthetic expense in the Savings category. The repository applies both
// effects as one unit so a failure leaves neither applied.
func (s *savingsService) Contribute(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: contribution amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.savingsRepo.FindSavingsGoalByID(ctx, userID, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find savings goal", slog.String("goal_id", goalID))
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		Type:          domain.Expense,
		Category:      domain.SavingsCategory,
		Date:          now,
		Description:   fmt.Sprintf("Savings: %s", goal.Name),
		PaymentMethod: domain.PaymentMobileMoney,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.savingsRepo.AddContribution(ctx, userID, goalID, amount, txn); err != nil {
		s.LogError(ctx, err, "Failed to apply contribution", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to apply contribution: %w", err)
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	goal.LastUpdatedAt = now

	s.LogInfo(ctx, "Contribution applied",
		slog.String("goal_id", goalID),
		slog.String("amount", amount.String()),
		slog.String("transaction_id", txn.TransactionID))
	return goal, nil
}

// ListSavingsGoals returns all goals for a user.
func (s *savingsService) ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	goals, err := s.savingsRepo.ListSavingsGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings goals")
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	if goals == nil {
		return []domain.SavingsGoal{}, nil
	}
	return goals, nil
}

// DeleteSavingsGoal removes a goal by id. Contribution transactions already
// in the ledger are untouched.
func (s *savingsService) DeleteSavingsGoal(ctx context.Context, userID, goalID string) error {
	if err := s.savingsRepo.DeleteSavingsGoal(ctx, userID, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete savings goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}
	s.LogInfo(ctx, "Savings goal deleted", slog.String("goal_id", goalID))
	return nil
}
