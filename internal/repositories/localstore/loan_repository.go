package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// loanRecord is the blob form of a loan: the loan itself plus the savings
// and financials side-records derived from its principal.
type loanRecord struct {
	domain.Loan
	Savings    domain.LoanSavings    `json:"savings"`
	Financials domain.LoanFinancials `json:"financials"`
}

// LoanRepository is the blob-backed loan collection.
type LoanRepository struct {
	store *Store
}

var _ portsrepo.LoanRepositoryFacade = (*LoanRepository)(nil)

// SaveLoan appends the loan with its side-records as one blob entry, so the
// three records can never diverge.
func (r *LoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, savings domain.LoanSavings, financials domain.LoanFinancials) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	loans := readCollection[loanRecord](r.store, loansFile)
	for _, existing := range loans {
		if existing.LoanID == loan.LoanID {
			return fmt.Errorf("%w: loan %s already exists", apperrors.ErrDuplicate, loan.LoanID)
		}
	}
	loans = append(loans, loanRecord{Loan: loan, Savings: savings, Financials: financials})
	return writeCollection(r.store, loansFile, loans)
}

// AddPayment appends a repayment to the loan's history and adds the fixed
// weekly deposit to the savings balance, in one blob rewrite.
func (r *LoanRepository) AddPayment(ctx context.Context, userID, loanID string, payment domain.LoanPayment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	loans := readCollection[loanRecord](r.store, loansFile)
	for i := range loans {
		if loans[i].LoanID == loanID && loans[i].UserID == userID {
			loans[i].Payments = append(loans[i].Payments, payment)
			loans[i].Savings.Amount = loans[i].Savings.Amount.Add(loans[i].Savings.WeeklyDeposit)
			loans[i].LastUpdatedAt = time.Now().UTC()
			return writeCollection(r.store, loansFile, loans)
		}
	}
	return errNotFound("loan", loanID)
}

// FindLoanByID retrieves a single loan with its payment history.
func (r *LoanRepository) FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range readCollection[loanRecord](r.store, loansFile) {
		if rec.LoanID == loanID && rec.UserID == userID {
			loan := rec.Loan
			return &loan, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListLoans retrieves all loans for a user in insertion order.
func (r *LoanRepository) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var results []domain.Loan
	for _, rec := range readCollection[loanRecord](r.store, loansFile) {
		if rec.UserID == userID {
			results = append(results, rec.Loan)
		}
	}
	return results, nil
}

// GetLoanSummary sums the user's savings and financials side-records across
// all loans. Both come back zero-valued when the user has no loans yet.
func (r *LoanRepository) GetLoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	savings := domain.LoanSavings{Amount: decimal.Zero, WeeklyDeposit: decimal.Zero}
	financials := domain.LoanFinancials{}
	for _, rec := range readCollection[loanRecord](r.store, loansFile) {
		if rec.UserID != userID {
			continue
		}
		savings.Amount = savings.Amount.Add(rec.Savings.Amount)
		savings.WeeklyDeposit = savings.WeeklyDeposit.Add(rec.Savings.WeeklyDeposit)
		financials.Income.Interest = financials.Income.Interest.Add(rec.Financials.Income.Interest)
		financials.Income.ProcessingFees = financials.Income.ProcessingFees.Add(rec.Financials.Income.ProcessingFees)
		financials.Income.OtherIncome = financials.Income.OtherIncome.Add(rec.Financials.Income.OtherIncome)
		financials.Expenses.Commission = financials.Expenses.Commission.Add(rec.Financials.Expenses.Commission)
		financials.Expenses.Transportation = financials.Expenses.Transportation.Add(rec.Financials.Expenses.Transportation)
		financials.Expenses.Salaries = financials.Expenses.Salaries.Add(rec.Financials.Expenses.Salaries)
		financials.Expenses.Stationery = financials.Expenses.Stationery.Add(rec.Financials.Expenses.Stationery)
		financials.Insurance = financials.Insurance.Add(rec.Financials.Insurance)
	}
	return &savings, &financials, nil
}
