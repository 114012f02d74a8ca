package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartcedi/cedis-tracker/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount positivity is validated in the service layer since binding tags
// cannot inspect decimals.
type CreateTransactionRequest struct {
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	Type                string          `json:"type" binding:"required,oneof=income expense"`
	Category            string          `json:"category" binding:"required,notblank"`
	Date                *time.Time      `json:"date"` // Defaults to now when omitted
	Description         string          `json:"description"`
	PaymentMethod       string          `json:"paymentMethod" binding:"required,oneof=cash mobileMoney bank other"`
	MobileMoneyProvider string          `json:"mobileMoneyProvider"`
}

// ListTransactionsParams are the query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	Amount              decimal.Decimal `json:"amount"`
	Type                string          `json:"type"`
	Category            string          `json:"category"`
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	PaymentMethod       string          `json:"paymentMethod"`
	MobileMoneyProvider string          `json:"mobileMoneyProvider,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       t.TransactionID,
		Amount:              t.Amount,
		Type:                string(t.Type),
		Category:            t.Category,
		Date:                t.Date,
		Description:         t.Description,
		PaymentMethod:       string(t.PaymentMethod),
		MobileMoneyProvider: t.MobileMoneyProvider,
		CreatedAt:           t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
