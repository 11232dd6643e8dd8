package shift

import (
	"time"
)

// Kind distinguishes planned coverage from emergency call-outs.
type Kind string

const (
	KindRegular   Kind = "regular"
	KindEmergency Kind = "emergency"
)

// Valid reports whether k is a known shift kind.
func (k Kind) Valid() bool {
	return k == KindRegular || k == KindEmergency
}

// Shift is a time-boxed unit of work at one site. The interval is same-day:
// EndTime is strictly after StartTime, no overnight wraparound. The core
// interval is immutable after creation except through an explicit move or
// time update, both of which re-run conflict checks.
type Shift struct {
	ID        string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	SiteID    string
	CreatedBy string
	Kind      Kind
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
