package dto

import (
	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a category budget.
// AlertThreshold of zero means "use the default" (80).
type CreateBudgetRequest struct {
	Category       string          `json:"category" binding:"required,notblank"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Period         string          `json:"period" binding:"required,oneof=daily weekly monthly"`
	AlertThreshold int             `json:"alertThreshold" binding:"omitempty,min=1,max=100"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       string          `json:"budgetID"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Spent          decimal.Decimal `json:"spent"`
	Period         string          `json:"period"`
	AlertThreshold int             `json:"alertThreshold"`
}

// ListBudgetsResponse wraps all budgets for a user.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetAlertsResponse wraps the currently triggered budget alerts.
type BudgetAlertsResponse struct {
	Alerts []domain.BudgetAlert `json:"alerts"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.BudgetID,
		Category:       b.Category,
		Amount:         b.Amount,
		Spent:          b.Spent,
		Period:         string(b.Period),
		AlertThreshold: b.AlertThreshold,
	}
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(&b)
	}
	return responses
}
