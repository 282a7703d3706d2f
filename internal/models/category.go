package models

import "time"

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID string
	Name       string
	SessionID  string
	CreatedAt  time.Time
}
