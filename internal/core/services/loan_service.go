package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/utils/finance"
)

// loanService manages fixed-schedule loans and their derived side-records.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryFacade
}

// NewLoanService creates a new loan service.
func NewLoanService(repo portsrepo.LoanRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: repo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateLoan creates an active loan from a positive principal. The weekly
// payment, savings and financials side-records are all fixed-rate
// derivations of the principal and are persisted together with the loan.
func (s *loanService) CreateLoan(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Loan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	loan := domain.Loan{
		LoanID:        uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		StartDate:     now,
		Status:        domain.LoanActive,
		WeeklyPayment: finance.WeeklyPayment(amount),
		Payments:      []domain.LoanPayment{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	savings := finance.DeriveLoanSavings(amount)
	financials := finance.DeriveLoanFinancials(amount)

	if err := s.loanRepo.SaveLoan(ctx, loan, savings, financials); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("amount", amount.String()))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	s.LogInfo(ctx, "Loan created",
		slog.String("loan_id", loan.LoanID),
		slog.String("amount", amount.String()),
		slog.String("weekly_payment", loan.WeeklyPayment.String()))
	return &loan, nil
}

// MakePayment appends a repayment to the loan's history. The savings balance
// grows by the weekly deposit, not by the payment amount; only repayment
// cadence moves savings, a quirk of the product's fixed schedule.
func (s *loanService) MakePayment(ctx context.Context, userID, loanID string, amount decimal.Decimal) (*domain.Loan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	payment := domain.LoanPayment{Amount: amount, Date: time.Now().UTC()}
	if err := s.loanRepo.AddPayment(ctx, userID, loanID, payment); err != nil {
		s.LogError(ctx, err, "Failed to record loan payment", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to record loan payment: %w", err)
	}

	loan, err := s.loanRepo.FindLoanByID(ctx, userID, loanID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload loan after payment", slog.String("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan payment recorded",
		slog.String("loan_id", loanID), slog.String("amount", amount.String()))
	return loan, nil
}

// ListLoans returns all loans for a user with payment histories.
func (s *loanService) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

// LoanSummary returns the user's savings and financials side-records.
func (s *loanService) LoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error) {
	savings, financials, err := s.loanRepo.GetLoanSummary(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load loan summary")
		return nil, nil, fmt.Errorf("failed to load loan summary: %w", err)
	}
	return savings, financials, nil
}
