package mapping

import (
	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/fintracc/finance_tracker_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Title:         d.Title,
		Amount:        d.Amount,
		CategoryID:    d.CategoryID,
		SessionID:     d.SessionID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Title:         m.Title,
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		SessionID:     m.SessionID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
