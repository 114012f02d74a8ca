// Package finance holds the fixed-rate loan derivations shared by services
// and repositories, so the percentages live in exactly one place.
package finance

import (
	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// Fixed product rates. Every side-record of a loan is a straight percentage
// of the principal; none of them is independently editable.
var (
	repaymentFactor    = decimal.RequireFromString("1.2")  // principal + 20% interest
	repaymentWeeks     = decimal.NewFromInt(15)            // over 15 weekly installments
	initialSavingsRate = decimal.RequireFromString("0.10") // opening savings balance
	weeklySavingsRate  = decimal.RequireFromString("0.1481")
	weeklyInterestRate = decimal.RequireFromString("0.1308")
	processingFeeRate  = decimal.RequireFromString("0.05")
	commissionRate     = decimal.RequireFromString("0.05")
	insuranceRate      = decimal.RequireFromString("0.03")
)

// WeeklyPayment returns the fixed weekly installment for a loan principal:
// amount * 1.2 / 15.
func WeeklyPayment(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(repaymentFactor).Div(repaymentWeeks)
}

// DeriveLoanSavings builds the savings side-record for a loan principal.
func DeriveLoanSavings(amount decimal.Decimal) domain.LoanSavings {
	return domain.LoanSavings{
		Amount:        amount.Mul(initialSavingsRate),
		WeeklyDeposit: amount.Mul(weeklySavingsRate),
	}
}

// DeriveLoanFinancials builds the financials side-record for a loan
// principal. Non-derived lines (other income, transportation, salaries,
// stationery) start at zero and are carried forward by the caller.
func DeriveLoanFinancials(amount decimal.Decimal) domain.LoanFinancials {
	return domain.LoanFinancials{
		Income: domain.LoanIncome{
			Interest:       amount.Mul(weeklyInterestRate),
			ProcessingFees: amount.Mul(processingFeeRate),
			OtherIncome:    decimal.Zero,
		},
		Expenses: domain.LoanExpenses{
			Commission:     amount.Mul(commissionRate),
			Transportation: decimal.Zero,
			Salaries:       decimal.Zero,
			Stationery:     decimal.Zero,
		},
		Insurance: amount.Mul(insuranceRate),
	}
}
