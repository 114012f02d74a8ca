package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		SavingsRepo:     newPgxSavingsRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
