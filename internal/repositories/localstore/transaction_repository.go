package localstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// TransactionRepository is the blob-backed ledger.
type TransactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction appends the transaction to the ledger blob and, for
// expenses, bumps the matching budget's spent total under the same lock.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txns := readCollection[domain.Transaction](r.store, transactionsFile)
	for _, existing := range txns {
		if existing.TransactionID == txn.TransactionID {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
	}
	txns = append(txns, txn)
	if err := writeCollection(r.store, transactionsFile, txns); err != nil {
		return err
	}

	if txn.Type == domain.Expense {
		return adjustBudgetSpent(r.store, txn.UserID, txn.Category, txn.Amount)
	}
	return nil
}

// DeleteTransaction removes the transaction and, for expenses, decrements the
// matching budget's spent total floored at zero, under the same lock.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txns := readCollection[domain.Transaction](r.store, transactionsFile)
	idx := -1
	for i, txn := range txns {
		if txn.TransactionID == transactionID && txn.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errNotFound("transaction", transactionID)
	}
	removed := txns[idx]
	txns = append(txns[:idx], txns[idx+1:]...)
	if err := writeCollection(r.store, transactionsFile, txns); err != nil {
		return err
	}

	if removed.Type == domain.Expense {
		return adjustBudgetSpent(r.store, userID, removed.Category, removed.Amount.Neg())
	}
	return nil
}

// FindTransactionByID retrieves a single transaction owned by userID.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, txn := range readCollection[domain.Transaction](r.store, transactionsFile) {
		if txn.TransactionID == transactionID && txn.UserID == userID {
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions retrieves the user's transactions, most recent first.
// A limit <= 0 returns the full ledger.
func (r *TransactionRepository) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var results []domain.Transaction
	for _, txn := range readCollection[domain.Transaction](r.store, transactionsFile) {
		if txn.UserID == userID {
			results = append(results, txn)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})

	if limit <= 0 {
		return results, nil
	}
	if offset >= len(results) {
		return []domain.Transaction{}, nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end], nil
}
