package domain

import "time"

// Category is a session-owned label that transactions may reference.
// Deleting a category does not touch referencing transactions; orphaned
// references are permitted.
type Category struct {
	CategoryID string    `json:"id"`
	Name       string    `json:"name"`
	SessionID  string    `json:"sessionId"`
	CreatedAt  time.Time `json:"createdAt"`
}
