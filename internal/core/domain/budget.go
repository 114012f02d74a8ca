package domain

import "github.com/shopspring/decimal"

// BudgetPeriod is the cadence a budget cap applies to.
type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
)

// DefaultAlertThreshold is the percent-consumed level that triggers an alert
// when a budget is created without one.
const DefaultAlertThreshold = 80

// Budget is a spending cap for a category. At most one budget exists per
// category for a given user.
//
// Spent is a maintained derived field: it must always equal the sum of
// expense transaction amounts in the matching category, net of deletions.
// Only the mutation path (transaction create/delete) may touch it.
type Budget struct {
	BudgetID       string          `json:"budgetID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"` // Positive cap
	Spent          decimal.Decimal `json:"spent"`  // Non-negative, floored at zero on decrement
	Period         BudgetPeriod    `json:"period"`
	AlertThreshold int             `json:"alertThreshold"` // Percent, defaults to 80
	AuditFields
}
