// Package analytics is the aggregation engine: pure functions that turn a
// snapshot of the ledger into derived financial views. Nothing in here
// mutates its input or keeps state, so every function is safe to call
// repeatedly over the same snapshot.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals sums transaction amounts by type. Balance is exactly
// TotalIncome minus TotalExpenses; no rounding is applied here, currency
// formatting is the caller's concern.
func ComputeTotals(txns []domain.Transaction) domain.Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			income = income.Add(t.Amount)
		case domain.Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return domain.Totals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// CheckBudgetAlerts returns an alert for every budget whose consumed
// percentage has reached its threshold. A budget with a zero cap never
// triggers: the naive spent/amount formula would divide by zero there.
func CheckBudgetAlerts(budgets []domain.Budget) []domain.BudgetAlert {
	alerts := []domain.BudgetAlert{}
	for _, b := range budgets {
		if b.Amount.IsZero() {
			continue
		}
		percentage := b.Spent.Div(b.Amount).Mul(hundred)
		if percentage.GreaterThanOrEqual(decimal.NewFromInt(int64(b.AlertThreshold))) {
			alerts = append(alerts, domain.BudgetAlert{
				Category:   b.Category,
				Spent:      b.Spent,
				Amount:     b.Amount,
				Percentage: percentage,
			})
		}
	}
	return alerts
}

// FilterByTimeWindow restricts a ledger snapshot to expense transactions
// dated within [now - window, now] inclusive. RangeAll applies no date
// filter. Range90Days looks back three calendar months rather than 90 whole
// days; the other ranges subtract calendar days. The mismatched boundary is
// inherited behavior and is pinned by tests, so do not unify it silently.
func FilterByTimeWindow(txns []domain.Transaction, rng domain.TimeRange, now time.Time) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Type != domain.Expense {
			continue
		}
		filtered = append(filtered, t)
	}
	if rng == domain.RangeAll {
		return filtered
	}

	var start time.Time
	switch rng {
	case domain.Range7Days:
		start = now.AddDate(0, 0, -7)
	case domain.Range30Days:
		start = now.AddDate(0, 0, -30)
	case domain.Range90Days:
		start = now.AddDate(0, -3, 0)
	default:
		return filtered
	}

	windowed := filtered[:0]
	for _, t := range filtered {
		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}
		windowed = append(windowed, t)
	}
	return windowed
}

// AggregateByCategory sums amounts per category, ordered by value descending.
// Ties keep first-encounter order: the sort is stable over insertion order.
func AggregateByCategory(txns []domain.Transaction) []domain.CategoryAmount {
	index := map[string]int{}
	result := []domain.CategoryAmount{}
	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(result)
			result = append(result, domain.CategoryAmount{Name: t.Category, Value: decimal.Zero})
			i = index[t.Category]
		}
		result[i].Value = result[i].Value.Add(t.Amount)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value.GreaterThan(result[j].Value)
	})
	return result
}

// AggregateByPaymentMethod sums amounts per payment method. The aggregation
// key is always the method itself; mobile money entries only get a friendlier
// display name, taken from the provider of the first transaction seen with
// that method.
func AggregateByPaymentMethod(txns []domain.Transaction) []domain.PaymentMethodAmount {
	index := map[domain.PaymentMethod]int{}
	result := []domain.PaymentMethodAmount{}
	for _, t := range txns {
		i, ok := index[t.PaymentMethod]
		if !ok {
			name := string(t.PaymentMethod)
			if t.PaymentMethod == domain.PaymentMobileMoney && t.MobileMoneyProvider != "" {
				name = t.MobileMoneyProvider + " Mobile Money"
			}
			index[t.PaymentMethod] = len(result)
			result = append(result, domain.PaymentMethodAmount{
				Name:   name,
				Method: t.PaymentMethod,
				Value:  decimal.Zero,
			})
			i = index[t.PaymentMethod]
		}
		result[i].Value = result[i].Value.Add(t.Amount)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value.GreaterThan(result[j].Value)
	})
	return result
}

// weekday label order used by the 7-day trend.
var weekdayOrder = map[string]int{
	"Sun": 0, "Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4, "Fri": 5, "Sat": 6,
}

// AggregateTrend groups spending by calendar day. For Range7Days the bucket
// label is the weekday name and the buckets are ordered Sun..Sat by weekday
// index, which can misorder a window spanning a week boundary; that is a
// known quirk of the trend view and is kept as-is. Every other range labels
// buckets "02 Jan" and sorts them lexicographically by label.
func AggregateTrend(txns []domain.Transaction, rng domain.TimeRange) []domain.TrendPoint {
	if len(txns) == 0 {
		return []domain.TrendPoint{}
	}

	layout := "02 Jan"
	if rng == domain.Range7Days {
		layout = "Mon"
	}

	index := map[string]int{}
	result := []domain.TrendPoint{}
	for _, t := range txns {
		label := t.Date.Format(layout)
		i, ok := index[label]
		if !ok {
			index[label] = len(result)
			result = append(result, domain.TrendPoint{Label: label, Amount: decimal.Zero})
			i = index[label]
		}
		result[i].Amount = result[i].Amount.Add(t.Amount)
	}

	if rng == domain.Range7Days {
		sort.SliceStable(result, func(i, j int) bool {
			return weekdayOrder[result[i].Label] < weekdayOrder[result[j].Label]
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Label < result[j].Label
		})
	}
	return result
}

// TotalSpending sums amounts over an already-filtered expense set.
func TotalSpending(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}
