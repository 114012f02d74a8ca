package services

import (
	"context"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// AnalyticsSvcFacade exposes the derived financial views. All computation is
// delegated to the pure aggregation engine over a fresh snapshot, so reads
// never mutate state.
type AnalyticsSvcFacade interface {
	// Summary returns the headline income/expense/balance totals.
	Summary(ctx context.Context, userID string) (*domain.Totals, error)

	// Spending returns the time-windowed category, payment method and trend
	// breakdowns for a range.
	Spending(ctx context.Context, userID string, rng domain.TimeRange) (*domain.SpendingReport, error)
}
