package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	TransactionID string
	Title         string
	Amount        decimal.Decimal // signed
	CategoryID    *string         // nullable column
	SessionID     string
	CreatedAt     time.Time
}
