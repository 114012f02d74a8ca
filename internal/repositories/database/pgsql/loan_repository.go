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

const loanColumns = `loan_id, user_id, amount, start_date, status, weekly_payment, created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loans and their derived
// side-records.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryWithTx {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

// SaveLoan inserts the loan row together with its savings and financials
// side-records in one database transaction.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, savings domain.LoanSavings, financials domain.LoanFinancials) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoan(loan)
	loanQuery := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, loanQuery,
		m.LoanID,
		m.UserID,
		m.Amount,
		m.StartDate,
		m.Status,
		m.WeeklyPayment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: loan %s already exists", apperrors.ErrDuplicate, m.LoanID)
		}
		return fmt.Errorf("%w: failed to insert loan %s: %v", apperrors.ErrStorage, m.LoanID, err)
	}

	ms := mapping.ToModelLoanSavings(loan.LoanID, savings)
	savingsQuery := `
		INSERT INTO loan_savings (loan_id, user_id, amount, weekly_deposit)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, savingsQuery, ms.LoanID, loan.UserID, ms.Amount, ms.WeeklyDeposit); err != nil {
		return fmt.Errorf("%w: failed to insert loan savings for %s: %v", apperrors.ErrStorage, m.LoanID, err)
	}

	mf := mapping.ToModelLoanFinancials(loan.LoanID, financials)
	financialsQuery := `
		INSERT INTO loan_financials (loan_id, user_id, interest, processing_fees, other_income, commission, transportation, salaries, stationery, insurance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, financialsQuery,
		mf.LoanID,
		loan.UserID,
		mf.Interest,
		mf.ProcessingFees,
		mf.OtherIncome,
		mf.Commission,
		mf.Transportation,
		mf.Salaries,
		mf.Stationery,
		mf.Insurance,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert loan financials for %s: %v", apperrors.ErrStorage, m.LoanID, err)
	}

	return r.Commit(ctx, tx)
}

// AddPayment appends a repayment row and adds the loan's weekly deposit to
// the savings side-record balance, in one database transaction. The deposit
// is the fixed weekly amount, not the repayment's size.
func (r *PgxLoanRepository) AddPayment(ctx context.Context, userID, loanID string, payment domain.LoanPayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM loans WHERE loan_id = $1 AND user_id = $2);`, loanID, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%w: failed to look up loan %s: %v", apperrors.ErrStorage, loanID, err)
	}
	if !exists {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}

	paymentQuery := `
		INSERT INTO loan_payments (payment_id, loan_id, amount, payment_date, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW());
	`
	if _, err := tx.Exec(ctx, paymentQuery, loanID, payment.Amount, payment.Date); err != nil {
		return fmt.Errorf("%w: failed to insert payment for loan %s: %v", apperrors.ErrStorage, loanID, err)
	}

	depositQuery := `
		UPDATE loan_savings
		SET amount = amount + weekly_deposit
		WHERE loan_id = $1;
	`
	if _, err := tx.Exec(ctx, depositQuery, loanID); err != nil {
		return fmt.Errorf("%w: failed to apply weekly deposit for loan %s: %v", apperrors.ErrStorage, loanID, err)
	}

	return r.Commit(ctx, tx)
}

// FindLoanByID retrieves a single loan with its payment history.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1 AND user_id = $2;`
	var m models.Loan
	err := r.Pool.QueryRow(ctx, query, loanID, userID).Scan(
		&m.LoanID,
		&m.UserID,
		&m.Amount,
		&m.StartDate,
		&m.Status,
		&m.WeeklyPayment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find loan %s: %v", apperrors.ErrStorage, loanID, err)
	}

	payments, err := r.listPayments(ctx, []string{loanID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLoan(m, payments[loanID])
	return &d, nil
}

// ListLoans retrieves all loans for a user with their payment histories.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list loans: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var loanModels []models.Loan
	var loanIDs []string
	for rows.Next() {
		var m models.Loan
		if err := rows.Scan(
			&m.LoanID,
			&m.UserID,
			&m.Amount,
			&m.StartDate,
			&m.Status,
			&m.WeeklyPayment,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan loan row: %v", apperrors.ErrStorage, err)
		}
		loanModels = append(loanModels, m)
		loanIDs = append(loanIDs, m.LoanID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating loan rows: %v", apperrors.ErrStorage, err)
	}

	paymentsByLoan := map[string][]models.LoanPayment{}
	if len(loanIDs) > 0 {
		paymentsByLoan, err = r.listPayments(ctx, loanIDs)
		if err != nil {
			return nil, err
		}
	}

	loans := make([]domain.Loan, len(loanModels))
	for i, m := range loanModels {
		loans[i] = mapping.ToDomainLoan(m, paymentsByLoan[m.LoanID])
	}
	return loans, nil
}

func (r *PgxLoanRepository) listPayments(ctx context.Context, loanIDs []string) (map[string][]models.LoanPayment, error) {
	query := `
		SELECT payment_id, loan_id, amount, payment_date, created_at
		FROM loan_payments
		WHERE loan_id = ANY($1)
		ORDER BY payment_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, loanIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list loan payments: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	payments := make(map[string][]models.LoanPayment)
	for rows.Next() {
		var p models.LoanPayment
		if err := rows.Scan(&p.PaymentID, &p.LoanID, &p.Amount, &p.PaymentDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan loan payment row: %v", apperrors.ErrStorage, err)
		}
		payments[p.LoanID] = append(payments[p.LoanID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating loan payment rows: %v", apperrors.ErrStorage, err)
	}
	return payments, nil
}

// GetLoanSummary aggregates the user's savings and financials side-records.
// Both come back zero-valued when the user has no loans yet.
func (r *PgxLoanRepository) GetLoanSummary(ctx context.Context, userID string) (*domain.LoanSavings, *domain.LoanFinancials, error) {
	var ms models.LoanSavings
	savingsQuery := `
		SELECT COALESCE(SUM(amount), 0), COALESCE(SUM(weekly_deposit), 0)
		FROM loan_savings
		WHERE user_id = $1;
	`
	if err := r.Pool.QueryRow(ctx, savingsQuery, userID).Scan(&ms.Amount, &ms.WeeklyDeposit); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to aggregate loan savings: %v", apperrors.ErrStorage, err)
	}

	var mf models.LoanFinancials
	financialsQuery := `
		SELECT COALESCE(SUM(interest), 0), COALESCE(SUM(processing_fees), 0), COALESCE(SUM(other_income), 0),
		       COALESCE(SUM(commission), 0), COALESCE(SUM(transportation), 0), COALESCE(SUM(salaries), 0),
		       COALESCE(SUM(stationery), 0), COALESCE(SUM(insurance), 0)
		FROM loan_financials
		WHERE user_id = $1;
	`
	err := r.Pool.QueryRow(ctx, financialsQuery, userID).Scan(
		&mf.Interest,
		&mf.ProcessingFees,
		&mf.OtherIncome,
		&mf.Commission,
		&mf.Transportation,
		&mf.Salaries,
		&mf.Stationery,
		&mf.Insurance,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to aggregate loan financials: %v", apperrors.ErrStorage, err)
	}

	savings := mapping.ToDomainLoanSavings(ms)
	financials := mapping.ToDomainLoanFinancials(mf)
	return &savings, &financials, nil
}
