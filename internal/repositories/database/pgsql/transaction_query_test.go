package pgsql

import (
	"testing"
	"time"

	"github.com/fintracc/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionPredicate_SessionOnly(t *testing.T) {
	where, args := transactionPredicate("sess-1", domain.TransactionFilter{})

	assert.Equal(t, "session_id = $1", where)
	assert.Equal(t, []any{"sess-1"}, args)
}

func TestTransactionPredicate_AllFilters(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	min := decimal.NewFromInt(-100)
	max := decimal.NewFromInt(100)
	categoryID := "11111111-1111-1111-1111-111111111111"

	where, args := transactionPredicate("sess-1", domain.TransactionFilter{
		StartDate:  &start,
		EndDate:    &end,
		Type:       domain.Debit,
		MinValue:   &min,
		MaxValue:   &max,
		CategoryID: &categoryID,
	})

	assert.Equal(t,
		"session_id = $1 AND created_at >= $2 AND created_at <= $3 AND amount < 0 AND amount >= $4 AND amount <= $5 AND category_id = $6",
		where)
	assert.Equal(t, []any{"sess-1", start, end, min, max, categoryID}, args)
}

func TestTransactionPredicate_CreditFiltersOnSign(t *testing.T) {
	where, _ := transactionPredicate("sess-1", domain.TransactionFilter{Type: domain.Credit})

	assert.Equal(t, "session_id = $1 AND amount > 0", where)
}

func TestTransactionPredicate_PlaceholdersSkipSignFilter(t *testing.T) {
	// The sign filter adds no argument, so the following bound must still be
	// numbered by argument position.
	min := decimal.Zero
	where, args := transactionPredicate("sess-1", domain.TransactionFilter{
		Type:     domain.Debit,
		MinValue: &min,
	})

	assert.Equal(t, "session_id = $1 AND amount < 0 AND amount >= $2", where)
	assert.Len(t, args, 2)
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		name   string
		filter domain.TransactionFilter
		want   string
	}{
		{"date desc default", domain.TransactionFilter{SortBy: domain.SortByDate, Order: domain.OrderDesc}, "ORDER BY created_at DESC, id"},
		{"date asc", domain.TransactionFilter{SortBy: domain.SortByDate, Order: domain.OrderAsc}, "ORDER BY created_at ASC, id"},
		{"value desc", domain.TransactionFilter{SortBy: domain.SortByValue, Order: domain.OrderDesc}, "ORDER BY amount DESC, id"},
		{"value asc", domain.TransactionFilter{SortBy: domain.SortByValue, Order: domain.OrderAsc}, "ORDER BY amount ASC, id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.filter))
		})
	}
}
