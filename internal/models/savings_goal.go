package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is the persisted form of a savings goal.
type SavingsGoal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      time.Time       `db:"deadline"`
	Color         string          `db:"color"`
	AuditFields
}
