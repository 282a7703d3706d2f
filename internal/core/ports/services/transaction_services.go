package services

import (
	"context"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/fintracc/finance_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves the session's transaction with the given
	// id. Returns apperrors.ErrNotFound when no row matches; the handler
	// folds that into a null-transaction 200 response.
	GetTransactionByID(ctx context.Context, sessionID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions runs the filter/sort/paginate pipeline.
	ListTransactions(ctx context.Context, sessionID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransactionsSummary returns the signed sum of the session's amounts.
	GetTransactionsSummary(ctx context.Context, sessionID string) (*domain.TransactionSummary, error)
}

// TransactionWriterSvc defines write operations for transaction data.
type TransactionWriterSvc interface {
	// CreateTransaction derives the signed amount from the request's type and
	// magnitude and persists the row scoped to sessionID.
	CreateTransaction(ctx context.Context, sessionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
