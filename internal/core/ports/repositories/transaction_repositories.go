package repositories

import (
	"context"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data.
// Every operation is scoped by sessionID; rows of other sessions are never
// visible through these methods.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction matching both id and
	// session. Returns apperrors.ErrNotFound when no row matches.
	FindTransactionByID(ctx context.Context, sessionID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page of the session's transactions
	// matching the filter, plus the total match count before pagination.
	ListTransactions(ctx context.Context, sessionID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)

	// SumTransactionAmounts returns the signed sum of the session's stored
	// amounts; zero when the session has no transactions.
	SumTransactionAmounts(ctx context.Context, sessionID string) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
