package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsCategory is the ledger category used for synthetic contribution
// expenses, so contributions show up in budgets and analytics like any
// other spending.
const SavingsCategory = "Savings"

// DefaultGoalDeadline is added to now when a goal is created without a deadline.
const DefaultGoalDeadline = 90 * 24 * time.Hour

// SavingsGoal is a named target amount accumulated via contributions.
// Every contribution also appends a synthetic expense transaction in the
// Savings category; the two effects are applied as one unit.
type SavingsGoal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`  // Positive
	CurrentAmount decimal.Decimal `json:"currentAmount"` // Non-negative
	Deadline      time.Time       `json:"deadline"`
	Color         string          `json:"color"` // Presentation hint only
	AuditFields
}
