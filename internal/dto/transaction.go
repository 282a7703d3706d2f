package dto

import (
	"fmt"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, matching what browser
	// clients already expect from the listing and summary endpoints.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateTransactionRequest defines the data needed to create a transaction.
// Amount is the positive magnitude; the stored sign is derived from Type.
type CreateTransactionRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Amount     decimal.Decimal        `json:"amount" binding:"required"`
	Type       domain.TransactionType `json:"type" binding:"required,oneof=credit debit"`
	CategoryID *string                `json:"categoryId" binding:"omitempty,uuid"`
}

// ListTransactionsParams defines the query parameters of the listing
// endpoint. Dates are bound as strings and validated against RFC3339 here;
// ToFilter parses them. Page/Limit carry binding defaults so the min/max
// rules always see a value.
type ListTransactionsParams struct {
	StartDate  string   `form:"startDate" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate    string   `form:"endDate" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Type       string   `form:"type" binding:"omitempty,oneof=credit debit"`
	MinValue   *float64 `form:"minValue"`
	MaxValue   *float64 `form:"maxValue"`
	CategoryID *string  `form:"categoryId" binding:"omitempty,uuid"`
	SortBy     string   `form:"sortBy,default=date" binding:"oneof=value date"`
	Order      string   `form:"order,default=desc" binding:"oneof=asc desc"`
	Page       int      `form:"page,default=1" binding:"min=1"`
	Limit      int      `form:"limit,default=10" binding:"min=1,max=100"`
}

// ToFilter converts validated listing params into the domain filter.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Type:       domain.TransactionType(p.Type),
		CategoryID: p.CategoryID,
		SortBy:     domain.SortField(p.SortBy),
		Order:      domain.SortOrder(p.Order),
		Page:       p.Page,
		Limit:      p.Limit,
	}

	if p.StartDate != "" {
		t, err := time.Parse(time.RFC3339, p.StartDate)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("invalid startDate %q: %w", p.StartDate, err)
		}
		filter.StartDate = &t
	}
	if p.EndDate != "" {
		t, err := time.Parse(time.RFC3339, p.EndDate)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("invalid endDate %q: %w", p.EndDate, err)
		}
		filter.EndDate = &t
	}
	if p.MinValue != nil {
		min := decimal.NewFromFloat(*p.MinValue)
		filter.MinValue = &min
	}
	if p.MaxValue != nil {
		max := decimal.NewFromFloat(*p.MaxValue)
		filter.MaxValue = &max
	}

	return filter, nil
}

// TransactionIDParam binds the :id path parameter.
type TransactionIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID *string         `json:"categoryId"`
	SessionID  string          `json:"sessionId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         txn.TransactionID,
		Title:      txn.Title,
		Amount:     txn.Amount,
		CategoryID: txn.CategoryID,
		SessionID:  txn.SessionID,
		CreatedAt:  txn.CreatedAt,
	}
}

// PaginationResponse carries the page metadata of a listing response.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// GetTransactionResponse wraps a single lookup. Transaction is null when no
// row matches; the endpoint answers 200 either way.
type GetTransactionResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
}

// SummaryResponse wraps the session's signed amount total.
type SummaryResponse struct {
	Summary SummaryAmount `json:"summary"`
}

// SummaryAmount holds the summed signed amount.
type SummaryAmount struct {
	Amount decimal.Decimal `json:"amount"`
}
