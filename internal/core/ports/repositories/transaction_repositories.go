package repositories

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions ordered by date
	// descending (most recent first). A limit <= 0 returns the full ledger.
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
// Both operations keep the matching budget's maintained spent total
// synchronized within the same storage unit as the ledger write.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. For expenses, the budget
	// whose category matches (if any) has its spent incremented by the
	// transaction amount atomically with the insert.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. For expenses, the matching
	// budget's spent is decremented by the transaction amount, floored at
	// zero, atomically with the delete.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
