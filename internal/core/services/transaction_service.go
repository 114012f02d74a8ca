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
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// transactionService coordinates ledger mutations. The cross-entity
// invariant — Budget.Spent tracking the expense ledger exactly — is enforced
// by delegating each mutation to a repository operation that applies the
// ledger write and the budget adjustment as a single storage unit.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and records a new ledger entry. An expense in
// a budgeted category increments that budget's spent in the same unit; with
// no matching budget the expense is still recorded.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	txn := domain.Transaction{
		TransactionID:       uuid.NewString(),
		UserID:              userID,
		Amount:              req.Amount,
		Type:                domain.TransactionType(req.Type),
		Category:            req.Category,
		Date:                date,
		Description:         req.Description,
		PaymentMethod:       domain.PaymentMethod(req.PaymentMethod),
		MobileMoneyProvider: req.MobileMoneyProvider,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if txn.PaymentMethod != domain.PaymentMobileMoney {
		txn.MobileMoneyProvider = ""
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("category", txn.Category), slog.String("type", string(txn.Type)))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// DeleteTransaction removes a ledger entry. For expenses the repository
// decrements the matching budget's spent, floored at zero, in the same unit.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns the user's transactions, most recent first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
