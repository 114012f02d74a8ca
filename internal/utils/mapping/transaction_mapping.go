package mapping

import (
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	"github.com/smartcedi/cedis-tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		UserID:              d.UserID,
		Amount:              d.Amount,
		TransactionType:     models.TransactionType(d.Type),
		Category:            d.Category,
		TransactionDate:     d.Date,
		Description:         d.Description,
		PaymentMethod:       string(d.PaymentMethod),
		MobileMoneyProvider: d.MobileMoneyProvider,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		UserID:              m.UserID,
		Amount:              m.Amount,
		Type:                domain.TransactionType(m.TransactionType),
		Category:            m.Category,
		Date:                m.TransactionDate,
		Description:         m.Description,
		PaymentMethod:       domain.PaymentMethod(m.PaymentMethod),
		MobileMoneyProvider: m.MobileMoneyProvider,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
