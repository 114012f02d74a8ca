package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcedi/cedis-tracker/internal/core/analytics"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

func expense(amount float64, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		Amount:        decimal.NewFromFloat(amount),
		Type:          domain.Expense,
		Category:      category,
		Date:          date,
		PaymentMethod: domain.PaymentCash,
	}
}

func income(amount float64, category string, date time.Time) domain.Transaction {
	return domain.Transaction{
		Amount:        decimal.NewFromFloat(amount),
		Type:          domain.Income,
		Category:      category,
		Date:          date,
		PaymentMethod: domain.PaymentBank,
	}
}

func TestComputeTotals(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name         string
		txns         []domain.Transaction
		wantIncome   string
		wantExpenses string
		wantBalance  string
	}{
		{
			name:         "empty ledger",
			txns:         nil,
			wantIncome:   "0",
			wantExpenses: "0",
			wantBalance:  "0",
		},
		{
			name: "mixed ledger",
			txns: []domain.Transaction{
				income(3000, "Salary", now),
				expense(450.50, "Food", now),
				expense(120, "Transport", now),
				income(200, "Gifts", now),
			},
			wantIncome:   "3200",
			wantExpenses: "570.5",
			wantBalance:  "2629.5",
		},
		{
			name: "expenses exceeding income give negative balance",
			txns: []domain.Transaction{
				income(100, "Salary", now),
				expense(250, "Rent", now),
			},
			wantIncome:   "100",
			wantExpenses: "250",
			wantBalance:  "-150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := analytics.ComputeTotals(tt.txns)
			assert.Equal(t, tt.wantIncome, totals.TotalIncome.String())
			assert.Equal(t, tt.wantExpenses, totals.TotalExpenses.String())
			assert.Equal(t, tt.wantBalance, totals.Balance.String())
		})
	}
}

func TestCheckBudgetAlerts(t *testing.T) {
	budget := func(category string, amount, spent float64, threshold int) domain.Budget {
		return domain.Budget{
			Category:       category,
			Amount:         decimal.NewFromFloat(amount),
			Spent:          decimal.NewFromFloat(spent),
			AlertThreshold: threshold,
		}
	}

	tests := []struct {
		name           string
		budgets        []domain.Budget
		wantCategories []string
	}{
		{
			name:           "no budgets",
			budgets:        nil,
			wantCategories: []string{},
		},
		{
			name: "below threshold does not trigger",
			budgets: []domain.Budget{
				budget("Food", 500, 350, 80),
			},
			wantCategories: []string{},
		},
		{
			name: "exactly at threshold triggers",
			budgets: []domain.Budget{
				budget("Food", 500, 400, 80),
			},
			wantCategories: []string{"Food"},
		},
		{
			name: "over cap triggers",
			budgets: []domain.Budget{
				budget("Transport", 100, 130, 80),
			},
			wantCategories: []string{"Transport"},
		},
		{
			name: "zero cap never triggers",
			budgets: []domain.Budget{
				budget("Weird", 0, 50, 80),
			},
			wantCategories: []string{},
		},
		{
			name: "only consumed budgets alert",
			budgets: []domain.Budget{
				budget("Food", 500, 499, 80),
				budget("Rent", 1000, 100, 80),
				budget("Data", 50, 45, 90),
			},
			wantCategories: []string{"Food", "Data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := analytics.CheckBudgetAlerts(tt.budgets)
			got := []string{}
			for _, a := range alerts {
				got = append(got, a.Category)
			}
			assert.Equal(t, tt.wantCategories, got)
		})
	}
}

func TestCheckBudgetAlerts_Percentage(t *testing.T) {
	alerts := analytics.CheckBudgetAlerts([]domain.Budget{
		{
			Category:       "Food",
			Amount:         decimal.NewFromInt(200),
			Spent:          decimal.NewFromInt(170),
			AlertThreshold: 80,
		},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, "85", alerts[0].Percentage.String())
	assert.Equal(t, "170", alerts[0].Spent.String())
	assert.Equal(t, "200", alerts[0].Amount.String())
}

func TestFilterByTimeWindow_ExpensesOnly(t *testing.T) {
	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		income(3000, "Salary", now.AddDate(0, 0, -1)),
		expense(50, "Food", now.AddDate(0, 0, -1)),
	}

	filtered := analytics.FilterByTimeWindow(txns, domain.RangeAll, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, domain.Expense, filtered[0].Type)
}

func TestFilterByTimeWindow_DayRanges(t *testing.T) {
	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rng  domain.TimeRange
		date time.Time
		want bool
	}{
		{"7days includes yesterday", domain.Range7Days, now.AddDate(0, 0, -1), true},
		{"7days includes the boundary day", domain.Range7Days, now.AddDate(0, 0, -7), true},
		{"7days excludes eight days ago", domain.Range7Days, now.AddDate(0, 0, -8), false},
		{"7days excludes future dates", domain.Range7Days, now.AddDate(0, 0, 1), false},
		{"30days includes 30 days ago", domain.Range30Days, now.AddDate(0, 0, -30), true},
		{"30days excludes 31 days ago", domain.Range30Days, now.AddDate(0, 0, -31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := analytics.FilterByTimeWindow(
				[]domain.Transaction{expense(10, "Food", tt.date)}, tt.rng, now)
			if tt.want {
				assert.Len(t, filtered, 1)
			} else {
				assert.Empty(t, filtered)
			}
		})
	}
}

// The 90-day range looks back three calendar months, not 90 whole days. From
// May 31 that lands on March 3 (February has no 31st), so a transaction 90
// days old can fall outside the window. This pins the behavior so a change to
// it is deliberate.
func TestFilterByTimeWindow_90DaysUsesCalendarMonths(t *testing.T) {
	now := time.Date(2025, time.May, 31, 12, 0, 0, 0, time.UTC)

	inside := expense(10, "Food", time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))
	outside := expense(10, "Food", time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC))

	filtered := analytics.FilterByTimeWindow([]domain.Transaction{inside, outside}, domain.Range90Days, now)

	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].Date.Equal(inside.Date))
}

func TestAggregateByCategory(t *testing.T) {
	now := time.Now().UTC()
	txns := []domain.Transaction{
		expense(30, "Transport", now),
		expense(100, "Food", now),
		expense(50, "Food", now),
		expense(20, "Data", now),
	}

	result := analytics.AggregateByCategory(txns)

	require.Len(t, result, 3)
	assert.Equal(t, "Food", result[0].Name)
	assert.Equal(t, "150", result[0].Value.String())
	assert.Equal(t, "Transport", result[1].Name)
	assert.Equal(t, "Data", result[2].Name)
}

func TestAggregateByCategory_TiesKeepInsertionOrder(t *testing.T) {
	now := time.Now().UTC()
	txns := []domain.Transaction{
		expense(40, "Transport", now),
		expense(40, "Food", now),
	}

	result := analytics.AggregateByCategory(txns)

	require.Len(t, result, 2)
	assert.Equal(t, "Transport", result[0].Name)
	assert.Equal(t, "Food", result[1].Name)
}

func TestAggregateByCategory_SumsMatchTotalSpending(t *testing.T) {
	now := time.Now().UTC()
	txns := []domain.Transaction{
		expense(12.34, "Food", now),
		expense(56.78, "Transport", now),
		expense(9.10, "Food", now),
	}

	result := analytics.AggregateByCategory(txns)
	sum := decimal.Zero
	for _, c := range result {
		sum = sum.Add(c.Value)
	}

	assert.True(t, sum.Equal(analytics.TotalSpending(txns)))
}

func TestAggregateByPaymentMethod(t *testing.T) {
	now := time.Now().UTC()
	momo := domain.Transaction{
		Amount:              decimal.NewFromInt(80),
		Type:                domain.Expense,
		Category:            "Food",
		Date:                now,
		PaymentMethod:       domain.PaymentMobileMoney,
		MobileMoneyProvider: "MTN",
	}
	txns := []domain.Transaction{
		expense(50, "Food", now),
		momo,
		expense(20, "Transport", now),
	}

	result := analytics.AggregateByPaymentMethod(txns)

	require.Len(t, result, 2)
	assert.Equal(t, "MTN Mobile Money", result[0].Name)
	assert.Equal(t, domain.PaymentMobileMoney, result[0].Method)
	assert.Equal(t, "80", result[0].Value.String())
	assert.Equal(t, "cash", result[1].Name)
	assert.Equal(t, "70", result[1].Value.String())
}

func TestAggregateByPaymentMethod_FirstProviderNamesTheBucket(t *testing.T) {
	now := time.Now().UTC()
	momo := func(amount float64, provider string) domain.Transaction {
		return domain.Transaction{
			Amount:              decimal.NewFromFloat(amount),
			Type:                domain.Expense,
			Date:                now,
			PaymentMethod:       domain.PaymentMobileMoney,
			MobileMoneyProvider: provider,
		}
	}

	result := analytics.AggregateByPaymentMethod([]domain.Transaction{
		momo(10, "Telecel"),
		momo(90, "MTN"),
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Telecel Mobile Money", result[0].Name)
	assert.Equal(t, "100", result[0].Value.String())
}

func TestAggregateTrend_WeekdayBucketsFor7Days(t *testing.T) {
	// 2025-05-14 is a Wednesday; 2025-05-11 a Sunday.
	txns := []domain.Transaction{
		expense(30, "Food", time.Date(2025, time.May, 14, 9, 0, 0, 0, time.UTC)),
		expense(10, "Food", time.Date(2025, time.May, 11, 9, 0, 0, 0, time.UTC)),
		expense(5, "Data", time.Date(2025, time.May, 14, 18, 0, 0, 0, time.UTC)),
	}

	trend := analytics.AggregateTrend(txns, domain.Range7Days)

	require.Len(t, trend, 2)
	assert.Equal(t, "Sun", trend[0].Label)
	assert.Equal(t, "10", trend[0].Amount.String())
	assert.Equal(t, "Wed", trend[1].Label)
	assert.Equal(t, "35", trend[1].Amount.String())
}

func TestAggregateTrend_DayLabelsForLongerRanges(t *testing.T) {
	txns := []domain.Transaction{
		expense(20, "Food", time.Date(2025, time.May, 9, 9, 0, 0, 0, time.UTC)),
		expense(15, "Food", time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC)),
		expense(5, "Data", time.Date(2025, time.May, 9, 18, 0, 0, 0, time.UTC)),
	}

	trend := analytics.AggregateTrend(txns, domain.Range30Days)

	require.Len(t, trend, 2)
	assert.Equal(t, "02 May", trend[0].Label)
	assert.Equal(t, "15", trend[0].Amount.String())
	assert.Equal(t, "09 May", trend[1].Label)
	assert.Equal(t, "25", trend[1].Amount.String())
}

func TestAggregateTrend_Empty(t *testing.T) {
	trend := analytics.AggregateTrend(nil, domain.Range7Days)
	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}

func TestEngine_IsPure(t *testing.T) {
	now := time.Now().UTC()
	txns := []domain.Transaction{
		expense(100, "Food", now),
		expense(50, "Transport", now),
		income(500, "Salary", now),
	}

	first := analytics.AggregateByCategory(txns)
	second := analytics.AggregateByCategory(txns)
	assert.Equal(t, first, second)

	totalsA := analytics.ComputeTotals(txns)
	totalsB := analytics.ComputeTotals(txns)
	assert.Equal(t, totalsA, totalsB)
}
