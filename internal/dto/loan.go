package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// CreateLoanRequest defines the data needed to create a loan.
type CreateLoanRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// LoanPaymentRequest defines the body for a repayment against a loan.
type LoanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// LoanPaymentResponse is one entry of a loan's repayment history.
type LoanPaymentResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID        string                `json:"loanID"`
	Amount        decimal.Decimal       `json:"amount"`
	StartDate     time.Time             `json:"startDate"`
	Status        string                `json:"status"`
	WeeklyPayment decimal.Decimal       `json:"weeklyPayment"`
	Payments      []LoanPaymentResponse `json:"payments"`
}

// ListLoansResponse wraps all loans for a user.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// LoanSummaryResponse bundles the derived savings and financials side-records.
type LoanSummaryResponse struct {
	Savings    domain.LoanSavings    `json:"savings"`
	Financials domain.LoanFinancials `json:"financials"`
}

// ToLoanResponse converts a domain.Loan to its response DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	payments := make([]LoanPaymentResponse, len(l.Payments))
	for i, p := range l.Payments {
		payments[i] = LoanPaymentResponse{Amount: p.Amount, Date: p.Date}
	}
	return LoanResponse{
		LoanID:        l.LoanID,
		Amount:        l.Amount,
		StartDate:     l.StartDate,
		Status:        string(l.Status),
		WeeklyPayment: l.WeeklyPayment,
		Payments:      payments,
	}
}

// ToLoanResponses converts a slice of domain loans.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	responses := make([]LoanResponse, len(loans))
	for i, l := range loans {
		responses[i] = ToLoanResponse(&l)
	}
	return responses
}
