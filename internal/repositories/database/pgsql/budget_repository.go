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

const budgetColumns = `budget_id, user_id, category, amount, spent, period, alert_threshold, created_at, created_by, last_updated_at, last_updated_by`

type spentDirection int

const (
	spentIncrement spentDirection = iota
	spentDecrement
)

// applyBudgetSpentDelta adjusts the maintained spent total of the budget
// matching (userID, category) inside the caller's transaction. Decrements are
// floored at zero. Having no budget in the category is not an error.
func applyBudgetSpentDelta(ctx context.Context, tx pgx.Tx, userID, category string, dir spentDirection, amount decimal.Decimal) error {
	var query string
	switch dir {
	case spentIncrement:
		query = `UPDATE budgets SET spent = spent + $1, last_updated_at = NOW() WHERE user_id = $2 AND category = $3;`
	case spentDecrement:
		query = `UPDATE budgets SET spent = GREATEST(spent - $1, 0), last_updated_at = NOW() WHERE user_id = $2 AND category = $3;`
	}
	if _, err := tx.Exec(ctx, query, amount, userID, category); err != nil {
		return fmt.Errorf("%w: failed to adjust budget spent for category %s: %v", apperrors.ErrStorage, category, err)
	}
	return nil
}

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budgets.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryWithTx {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryWithTx = (*PgxBudgetRepository)(nil)

// SaveBudget inserts a new budget. The category is unique per user.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.Amount,
		m.Spent,
		m.Period,
		m.AlertThreshold,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget for category %s already exists", apperrors.ErrDuplicate, m.Category)
		}
		return fmt.Errorf("%w: failed to save budget %s: %v", apperrors.ErrStorage, m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a single budget owned by userID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	return r.scanOne(ctx, query, budgetID, userID)
}

// FindBudgetByCategory retrieves the user's budget for a category, if any.
func (r *PgxBudgetRepository) FindBudgetByCategory(ctx context.Context, userID, category string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 AND category = $2;`
	return r.scanOne(ctx, query, userID, category)
}

func (r *PgxBudgetRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*domain.Budget, error) {
	var m models.Budget
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.Amount,
		&m.Spent,
		&m.Period,
		&m.AlertThreshold,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find budget: %v", apperrors.ErrStorage, err)
	}
	d := mapping.ToDomainBudget(m)
	return &d, nil
}

// ListBudgets retrieves all budgets for a user, oldest first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budgets: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var results []models.Budget
	for rows.Next() {
		var m models.Budget
		if err := rows.Scan(
			&m.BudgetID,
			&m.UserID,
			&m.Category,
			&m.Amount,
			&m.Spent,
			&m.Period,
			&m.AlertThreshold,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget row: %v", apperrors.ErrStorage, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating budget rows: %v", apperrors.ErrStorage, err)
	}

	return mapping.ToDomainBudgetSlice(results), nil
}

// DeleteBudget removes a budget by id. Historical transactions in the
// category stay in the ledger.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete budget %s: %v", apperrors.ErrStorage, budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	return nil
}
