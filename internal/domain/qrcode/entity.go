package qrcode

import (
	"time"
)

// Code is a clock-in verification code bound to a shift or its site. Image
// generation is out of scope; only the value and expiry matter here.
type Code struct {
	ID        string
	SiteID    string
	ShiftID   *string
	Value     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is no longer accepted at the given instant.
func (c Code) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
