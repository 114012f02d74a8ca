package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smartcedi/cedis-tracker/internal/apperrors"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	"github.com/smartcedi/cedis-tracker/internal/models"
	"github.com/smartcedi/cedis-tracker/internal/utils/mapping"
)

const savingsGoalColumns = `goal_id, user_id, name, target_amount, current_amount, deadline, color, created_at, created_by, last_updated_at, last_updated_by`

type PgxSavingsRepository struct {
	BaseRepository
}

// newPgxSavingsRepository creates a new repository for savings goals.
func newPgxSavingsRepository(pool *pgxpool.Pool) portsrepo.SavingsRepositoryWithTx {
	return &PgxSavingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavingsRepositoryWithTx = (*PgxSavingsRepository)(nil)

// SaveSavingsGoal inserts a new goal.
func (r *PgxSavingsRepository) SaveSavingsGoal(ctx context.Context, goal domain.SavingsGoal) error {
	m := mapping.ToModelSavingsGoal(goal)
	query := `
		INSERT INTO savings_goals (` + savingsGoalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: savings goal %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("%w: failed to save savings goal %s: %v", apperrors.ErrStorage, m.GoalID, err)
	}
	return nil
}

// AddContribution increments the goal's current amount, inserts the synthetic
// Savings expense and bumps a matching budget, all in one database transaction.
func (r *PgxSavingsRepository) AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE savings_goals
		SET current_amount = current_amount + $1, last_updated_at = NOW()
		WHERE goal_id = $2 AND user_id = $3;
	`
	tag, err := tx.Exec(ctx, updateQuery, amount, goalID, userID)
	if err != nil {
		return fmt.Errorf("%w: failed to add contribution to goal %s: %v", apperrors.ErrStorage, goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: savings goal %s", apperrors.ErrNotFound, goalID)
	}

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
		return fmt.Errorf("%w: failed to record contribution transaction: %v", apperrors.ErrStorage, err)
	}

	if err := applyBudgetSpentDelta(ctx, tx, userID, txn.Category, spentIncrement, modelTxn.Amount); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindSavingsGoalByID retrieves a single goal owned by userID.
func (r *PgxSavingsRepository) FindSavingsGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	query := `SELECT ` + savingsGoalColumns + ` FROM savings_goals WHERE goal_id = $1 AND user_id = $2;`
	var m models.SavingsGoal
	err := r.Pool.QueryRow(ctx, query, goalID, userID).Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find savings goal %s: %v", apperrors.ErrStorage, goalID, err)
	}
	d := mapping.ToDomainSavingsGoal(m)
	return &d, nil
}

// ListSavingsGoals retrieves all goals for a user, oldest first.
func (r *PgxSavingsRepository) ListSavingsGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + savingsGoalColumns + ` FROM savings_goals WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list savings goals: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var results []models.SavingsGoal
	for rows.Next() {
		var m models.SavingsGoal
		if err := rows.Scan(
			&m.GoalID,
			&m.UserID,
			&m.Name,
			&m.TargetAmount,
			&m.CurrentAmount,
			&m.Deadline,
			&m.Color,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan savings goal row: %v", apperrors.ErrStorage, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating savings goal rows: %v", apperrors.ErrStorage, err)
	}

	return mapping.ToDomainSavingsGoalSlice(results), nil
}

// DeleteSavingsGoal removes a goal by id. Contribution transactions already
// in the ledger are untouched.
func (r *PgxSavingsRepository) DeleteSavingsGoal(ctx context.Context, userID, goalID string) error {
	query := `DELETE FROM savings_goals WHERE goal_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete savings goal %s: %v", apperrors.ErrStorage, goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: savings goal %s", apperrors.ErrNotFound, goalID)
	}
	return nil
}
