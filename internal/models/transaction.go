package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the persisted form of a ledger entry.
// MobileMoneyProvider is empty for every payment method except mobileMoney.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	UserID              string          `db:"user_id"`
	Amount              decimal.Decimal `db:"amount"`
	TransactionType     TransactionType `db:"transaction_type"`
	Category            string          `db:"category"`
	TransactionDate     time.Time       `db:"transaction_date"`
	Description         string          `db:"description"`
	PaymentMethod       string          `db:"payment_method"`
	MobileMoneyProvider string          `db:"mobile_money_provider"`
	AuditFields
}
