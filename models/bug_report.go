package models

import "time"

// BugReport is a free-text feedback message. Append-only: there is no
// update or delete path.
type BugReport struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
