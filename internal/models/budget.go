package models

import "github.com/shopspring/decimal"

// Budget is the persisted form of a category spending cap.
// Spent is maintained by the transaction mutation paths, never set directly.
type Budget struct {
	BudgetID       string          `db:"budget_id"`
	UserID         string          `db:"user_id"`
	Category       string          `db:"category"`
	Amount         decimal.Decimal `db:"amount"`
	Spent          decimal.Decimal `db:"spent"`
	Period         string          `db:"period"`
	AlertThreshold int             `db:"alert_threshold"`
	AuditFields
}
