package domain

import "github.com/shopspring/decimal"

// TimeRange selects the lookback window for spending analytics.
type TimeRange string

const (
	Range7Days  TimeRange = "7days"
	Range30Days TimeRange = "30days"
	Range90Days TimeRange = "90days"
	RangeAll    TimeRange = "all"
)

// Totals is the headline summary over the full ledger.
type Totals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"` // TotalIncome - TotalExpenses
}

// BudgetAlert is emitted for every budget consumed past its alert threshold.
type BudgetAlert struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryAmount is spending aggregated under one category.
type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// PaymentMethodAmount is spending aggregated under one payment method.
// Name is a display label (mobile money entries are relabeled with their
// provider); Method stays the aggregation key.
type PaymentMethodAmount struct {
	Name   string          `json:"name"`
	Method PaymentMethod   `json:"method"`
	Value  decimal.Decimal `json:"value"`
}

// TrendPoint is spending for one calendar-day bucket of the trend chart.
type TrendPoint struct {
	Label  string          `json:"date"` // Weekday name for 7days, "02 Jan" otherwise
	Amount decimal.Decimal `json:"amount"`
}

// SpendingReport bundles the derived views for one time range.
type SpendingReport struct {
	Range           TimeRange             `json:"range"`
	TotalSpending   decimal.Decimal       `json:"totalSpending"`
	ByCategory      []CategoryAmount      `json:"byCategory"`
	ByPaymentMethod []PaymentMethodAmount `json:"byPaymentMethod"`
	Trend           []TrendPoint          `json:"trend"`
}
