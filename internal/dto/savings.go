package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// CreateSavingsGoalRequest defines the data needed to create a savings goal.
// Deadline defaults to 90 days from now when omitted.
type CreateSavingsGoalRequest struct {
	Name         string          `json:"name" binding:"required,notblank"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *time.Time      `json:"deadline"`
	Color        string          `json:"color"`
}

// ContributeRequest defines the body for contributing to a savings goal.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SavingsGoalResponse defines the data returned for a savings goal.
type SavingsGoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Color         string          `json:"color"`
}

// ListSavingsGoalsResponse wraps all goals for a user.
type ListSavingsGoalsResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}

// ToSavingsGoalResponse converts a domain.SavingsGoal to its response DTO.
func ToSavingsGoalResponse(g *domain.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Color:         g.Color,
	}
}

// ToSavingsGoalResponses converts a slice of domain goals.
func ToSavingsGoalResponses(goals []domain.SavingsGoal) []SavingsGoalResponse {
	responses := make([]SavingsGoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToSavingsGoalResponse(&g)
	}
	return responses
}
