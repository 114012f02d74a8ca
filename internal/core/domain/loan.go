package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
)

// LoanPayment is one repayment made against a loan.
type LoanPayment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Loan is a simple fixed-schedule loan: principal plus 20% interest repaid
// over 15 weekly installments.
type Loan struct {
	LoanID        string          `json:"loanID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	StartDate     time.Time       `json:"startDate"`
	Status        LoanStatus      `json:"status"`
	WeeklyPayment decimal.Decimal `json:"weeklyPayment"` // amount * 1.2 / 15
	Payments      []LoanPayment   `json:"payments"`
	AuditFields
}

// LoanSavings is the savings side-record derived from a loan amount.
// The balance grows by WeeklyDeposit on every repayment, regardless of the
// repayment's size.
type LoanSavings struct {
	Amount        decimal.Decimal `json:"amount"`        // 10% of the loan initially
	WeeklyDeposit decimal.Decimal `json:"weeklyDeposit"` // 14.81% of the loan
}

// LoanIncome groups the income lines of the loan financials record.
type LoanIncome struct {
	Interest       decimal.Decimal `json:"interest"`       // 13.08% of the loan
	ProcessingFees decimal.Decimal `json:"processingFees"` // 5% of the loan
	OtherIncome    decimal.Decimal `json:"otherIncome"`
}

// LoanExpenses groups the expense lines of the loan financials record.
type LoanExpenses struct {
	Commission     decimal.Decimal `json:"commission"` // 5% of the loan
	Transportation decimal.Decimal `json:"transportation"`
	Salaries       decimal.Decimal `json:"salaries"`
	Stationery     decimal.Decimal `json:"stationery"`
}

// LoanFinancials is the fixed-rate financials record derived from a loan
// amount. Its derived lines are not independently editable.
type LoanFinancials struct {
	Income    LoanIncome      `json:"income"`
	Expenses  LoanExpenses    `json:"expenses"`
	Insurance decimal.Decimal `json:"insurance"` // 3% of the loan
}
