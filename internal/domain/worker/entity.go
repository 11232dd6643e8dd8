package worker

import (
	"time"
)

// Worker is a schedulable member of the workforce. The engine only needs
// existence and site-authorization lookups; profile management lives elsewhere.
type Worker struct {
	ID        string
	UserID    string
	Code      string
	Position  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
