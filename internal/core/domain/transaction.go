package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// PaymentMethod is the closed set of ways a transaction can be settled.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobileMoney"
	PaymentBank        PaymentMethod = "bank"
	PaymentOther       PaymentMethod = "other"
)

// Transaction is a single income or expense entry in the user's ledger.
// It is immutable once created; the only lifecycle operation after creation
// is deletion.
type Transaction struct {
	TransactionID       string          `json:"transactionID"` // Primary Key (UUID)
	UserID              string          `json:"userID"`        // Owning principal
	Amount              decimal.Decimal `json:"amount"`        // Positive value
	Type                TransactionType `json:"type"`          // income or expense
	Category            string          `json:"category"`
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	PaymentMethod       PaymentMethod   `json:"paymentMethod"`
	MobileMoneyProvider string          `json:"mobileMoneyProvider,omitempty"` // Set only for mobileMoney
	AuditFields
}
