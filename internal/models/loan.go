package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the persisted form of a fixed-schedule loan.
type Loan struct {
	LoanID        string          `db:"loan_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	StartDate     time.Time       `db:"start_date"`
	Status        string          `db:"status"`
	WeeklyPayment decimal.Decimal `db:"weekly_payment"`
	AuditFields
}

// LoanPayment is one repayment row belonging to a loan.
type LoanPayment struct {
	PaymentID   string          `db:"payment_id"`
	LoanID      string          `db:"loan_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// LoanSavings is the savings side-record derived from a loan.
type LoanSavings struct {
	LoanID        string          `db:"loan_id"`
	Amount        decimal.Decimal `db:"amount"`
	WeeklyDeposit decimal.Decimal `db:"weekly_deposit"`
}

// LoanFinancials is the fixed-rate financials side-record derived from a loan.
// Income and expense lines are flattened into columns.
type LoanFinancials struct {
	LoanID         string          `db:"loan_id"`
	Interest       decimal.Decimal `db:"interest"`
	ProcessingFees decimal.Decimal `db:"processing_fees"`
	OtherIncome    decimal.Decimal `db:"other_income"`
	Commission     decimal.Decimal `db:"commission"`
	Transportation decimal.Decimal `db:"transportation"`
	Salaries       decimal.Decimal `db:"salaries"`
	Stationery     decimal.Decimal `db:"stationery"`
	Insurance      decimal.Decimal `db:"insurance"`
}
