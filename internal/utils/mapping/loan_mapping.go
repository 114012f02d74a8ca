package mapping

import (
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan. Payments are stored in
// their own table and carried separately.
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:        d.LoanID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		StartDate:     d.StartDate,
		Status:        string(d.Status),
		WeeklyPayment: d.WeeklyPayment,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan and its payment rows to a domain Loan
func ToDomainLoan(m models.Loan, payments []models.LoanPayment) domain.Loan {
	d := domain.Loan{
		LoanID:        m.LoanID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		StartDate:     m.StartDate,
		Status:        domain.LoanStatus(m.Status),
		WeeklyPayment: m.WeeklyPayment,
		Payments:      make([]domain.LoanPayment, len(payments)),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	for i, p := range payments {
		d.Payments[i] = domain.LoanPayment{Amount: p.Amount, Date: p.PaymentDate}
	}
	return d
}

// ToModelLoanSavings converts a domain LoanSavings to its row form
func ToModelLoanSavings(loanID string, d domain.LoanSavings) models.LoanSavings {
	return models.LoanSavings{
		LoanID:        loanID,
		Amount:        d.Amount,
		WeeklyDeposit: d.WeeklyDeposit,
	}
}

// ToDomainLoanSavings converts a row LoanSavings to its domain form
func ToDomainLoanSavings(m models.LoanSavings) domain.LoanSavings {
	return domain.LoanSavings{
		Amount:        m.Amount,
		WeeklyDeposit: m.WeeklyDeposit,
	}
}

// ToModelLoanFinancials flattens a domain LoanFinancials into its row form
func ToModelLoanFinancials(loanID string, d domain.LoanFinancials) models.LoanFinancials {
	return models.LoanFinancials{
		LoanID:         loanID,
		Interest:       d.Income.Interest,
		ProcessingFees: d.Income.ProcessingFees,
		OtherIncome:    d.Income.OtherIncome,
		Commission:     d.Expenses.Commission,
		Transportation: d.Expenses.Transportation,
		Salaries:       d.Expenses.Salaries,
		Stationery:     d.Expenses.Stationery,
		Insurance:      d.Insurance,
	}
}

// ToDomainLoanFinancials rebuilds a domain LoanFinancials from its row form
func ToDomainLoanFinancials(m models.LoanFinancials) domain.LoanFinancials {
	return domain.LoanFinancials{
		Income: domain.LoanIncome{
			Interest:       m.Interest,
			ProcessingFees: m.ProcessingFees,
			OtherIncome:    m.OtherIncome,
		},
		Expenses: domain.LoanExpenses{
			Commission:     m.Commission,
			Transportation: m.Transportation,
			Salaries:       m.Salaries,
			Stationery:     m.Stationery,
		},
		Insurance: m.Insurance,
	}
}
