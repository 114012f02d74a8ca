package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// LoanReaderSvc defines read operations for loans.
type LoanReaderSvc interface {
	// ListLoans returns all loans for a user with payment histories.
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)

	// LoanSummary returns the user's derived savings and financials records.
	LoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error)
}

// LoanWriterSvc defines write operations for loans.
type LoanWriterSvc interface {
	// CreateLoan creates an active loan and its derived side-records from the
	// principal amount.
	CreateLoan(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Loan, error)

	// MakePayment appends a repayment to the loan and grows the savings
	// balance by the weekly deposit.
	MakePayment(ctx context.Context, userID, loanID string, amount decimal.Decimal) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan service interfaces.
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
