package site

import (
	"time"
)

// Site is a client location that shifts are scheduled at.
type Site struct {
	ID           string
	BusinessName string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
