package services

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/dto"
)

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	// ListTransactions returns the user's transactions, most recent first.
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the mutation operations on the ledger. These
// are the paths that keep Budget.Spent synchronized with the transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates and records a transaction, bumping the
	// matching budget's spent when it is an expense.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction, unwinding its effect on the
	// matching budget's spent (floored at zero).
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
