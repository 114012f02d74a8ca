package services

import (
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Savings = NewSavingsService(repos.SavingsRepo)
	container.Loan = NewLoanService(repos.LoanRepo)
	container.Analytics = NewAnalyticsService(repos.TransactionRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(repos.UserRepo, cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
