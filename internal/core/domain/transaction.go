package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a money movement as supplied by
// the client. It is not stored: the sign of Amount carries the direction
// (credit > 0, debit < 0).
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is a single money movement owned by one session.
// Rows are insert-only: there is no update or delete lifecycle.
type Transaction struct {
	TransactionID string          `json:"id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"` // signed; sign derived from TransactionType at create time
	CategoryID    *string         `json:"categoryId"`
	SessionID     string          `json:"sessionId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SortField selects the column a transaction listing is ordered by.
type SortField string

const (
	SortByDate  SortField = "date"
	SortByValue SortField = "value"
)

// SortOrder selects the listing direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// TransactionFilter is the validated query for the listing pipeline. All
// filter fields are optional; nil/empty means "no constraint". Filters are
// AND-composed, and the value bounds compare against the stored signed
// amount, not the magnitude.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       TransactionType // empty means both directions
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
	CategoryID *string
	SortBy     SortField
	Order      SortOrder
	Page       int
	Limit      int
}

// Offset returns the row offset for the requested page.
func (f TransactionFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TransactionPage is one page of listing results plus the total match count
// across all pages.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
}

// TransactionSummary is the signed sum of a session's stored amounts.
type TransactionSummary struct {
	Amount decimal.Decimal `json:"amount"`
}
