package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/analytics"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/dto"
	"github.com/smartcedi/cedis-tracker/internal/utils"
)

// budgetService manages category budgets and their alert state.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a budget for a category the user has not budgeted
// yet. Spent starts at zero; the alert threshold defaults to 80 percent.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}

	existing, err := s.budgetRepo.FindBudgetByCategory(ctx, userID, req.Category)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing budget", slog.String("category", req.Category))
		return nil, fmt.Errorf("failed to check for existing budget: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a budget for category %q already exists", apperrors.ErrDuplicate, req.Category)
	}

	threshold := req.AlertThreshold
	if threshold == 0 {
		threshold = domain.DefaultAlertThreshold
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		UserID:         userID,
		Category:       req.Category,
		Amount:         req.Amount,
		Spent:          decimal.Zero,
		Period:         domain.BudgetPeriod(req.Period),
		AlertThreshold: threshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("category", budget.Category))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created",
		slog.String("budget_id", budget.BudgetID), slog.String("category", budget.Category))
	return &budget, nil
}

// ListBudgets returns all budgets for a user.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// BudgetAlerts runs the alert check over a fresh snapshot of the user's
// budgets.
func (s *budgetService) BudgetAlerts(ctx context.Context, userID string) ([]domain.BudgetAlert, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budgets for alert check")
		return nil, fmt.Errorf("failed to load budgets for alert check: %w", err)
	}
	alerts := analytics.CheckBudgetAlerts(budgets)
	for _, alert := range alerts {
		s.LogWarn(ctx, "Budget threshold reached",
			slog.String("category", alert.Category),
			slog.String("spent", utils.FormatCedis(alert.Spent)),
			slog.String("cap", utils.FormatCedis(alert.Amount)))
	}
	return alerts, nil
}

// DeleteBudget removes a budget by id. Transactions already recorded in the
// category remain in the ledger, no longer associated with any budget.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
