package repositories

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// LoanReader defines read operations for loans and their derived side-records.
type LoanReader interface {
	// FindLoanByID retrieves a single loan (with payment history) owned by userID.
	FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error)

	// ListLoans retrieves all loans (with payment histories) for a user.
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)

	// GetLoanSummary retrieves the user's savings and financials side-records.
	// Both are zero-valued when no loan has been created yet.
	GetLoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error)
}

// LoanWriter defines write operations for loans.
type LoanWriter interface {
	// SaveLoan persists a new loan together with the savings and financials
	// side-records derived from its principal, as one storage unit.
	SaveLoan(ctx context.Context, loan domain.Loan, savings domain.LoanSavings, financials domain.LoanFinancials) error

	// AddPayment appends a repayment to the loan's history and adds the
	// savings weekly deposit to the savings balance, as one storage unit.
	AddPayment(ctx context.Context, userID, loanID string, payment domain.LoanPayment) error
}

// LoanRepositoryFacade combines all loan repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}

// LoanRepositoryWithTx extends the facade with transaction capabilities.
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
