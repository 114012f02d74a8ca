package services

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcedi/cedis-tracker/internal/core/analytics"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portsrepo "github.com/smartcedi/cedis-tracker/internal/core/ports/repositories"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
)

// analyticsService feeds ledger snapshots through the pure aggregation
// engine. It holds no state of its own; calling any method twice over an
// unchanged ledger yields identical results.
type analyticsService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	now             func() time.Time
}

// AnalyticsServiceOption configures the analytics service.
type AnalyticsServiceOption func(*analyticsService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo portsrepo.TransactionReader, options ...AnalyticsServiceOption) portssvc.AnalyticsSvcFacade {
	svc := &analyticsService{
		transactionRepo: repo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// Summary returns the headline income/expense/balance totals over the full
// ledger.
func (s *analyticsService) Summary(ctx context.Context, userID string) (*domain.Totals, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}
	totals := analytics.ComputeTotals(txns)
	return &totals, nil
}

// Spending returns the windowed category, payment method and trend
// breakdowns for a range.
func (s *analyticsService) Spending(ctx context.Context, userID string, rng domain.TimeRange) (*domain.SpendingReport, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for spending report")
		return nil, fmt.Errorf("failed to load transactions for spending report: %w", err)
	}

	windowed := analytics.FilterByTimeWindow(txns, rng, s.now().UTC())
	report := &domain.SpendingReport{
		Range:           rng,
		TotalSpending:   analytics.TotalSpending(windowed),
		ByCategory:      analytics.AggregateByCategory(windowed),
		ByPaymentMethod: analytics.AggregateByPaymentMethod(windowed),
		Trend:           analytics.AggregateTrend(windowed, rng),
	}
	return report, nil
}
