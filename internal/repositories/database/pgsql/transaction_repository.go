package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	"github.com/smartcedi/cedis-tracker/internal/models"
	"github.com/smartcedi/cedis-tracker/internal/utils/mapping"
)

const transactionColumns = `transaction_id, user_id, amount, transaction_type, category, transaction_date, description, payment_method, mobile_money_provider, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the transaction and, for expenses, bumps the spent
// total of the budget in the same category within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.Category,
		modelTxn.TransactionDate,
		modelTxn.Description,
		modelTxn.PaymentMethod,
		modelTxn.MobileMoneyProvider,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("%w: failed to insert transaction %s: %v", apperrors.ErrStorage, modelTxn.TransactionID, err)
	}

	if txn.Type == domain.Expense {
		if err := applyBudgetSpentDelta(ctx, tx, txn.UserID, txn.Category, spentIncrement, modelTxn.Amount); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction and, for expenses, decrements the
// matching budget's spent total floored at zero, in one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var modelTxn models.Transaction
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2
		RETURNING amount, transaction_type, category;
	`
	err = tx.QueryRow(ctx, query, transactionID, userID).Scan(
		&modelTxn.Amount,
		&modelTxn.TransactionType,
		&modelTxn.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return fmt.Errorf("%w: failed to delete transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}

	if modelTxn.TransactionType == models.Expense {
		if err := applyBudgetSpentDelta(ctx, tx, userID, modelTxn.Category, spentDecrement, modelTxn.Amount); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a single transaction owned by userID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.TransactionType,
		&m.Category,
		&m.TransactionDate,
		&m.Description,
		&m.PaymentMethod,
		&m.MobileMoneyProvider,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves the user's transactions, most recent first.
// A limit <= 0 returns the full ledger.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list transactions: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var results []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Amount,
			&m.TransactionType,
			&m.Category,
			&m.TransactionDate,
			&m.Description,
			&m.PaymentMethod,
			&m.MobileMoneyProvider,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction row: %v", apperrors.ErrStorage, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating transaction rows: %v", apperrors.ErrStorage, err)
	}

	return mapping.ToDomainTransactionSlice(results), nil
}
