package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for shifts.
type ShiftRepository interface {
	// Create inserts a new shift.
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift, or ErrShiftNotFound.
	GetByID(ctx context.Context, id string) (Shift, error)

	// FindEquivalent looks up a shift with the same site, date, interval and
	// kind, or ErrShiftNotFound. Used by the move operation's find-or-create.
	FindEquivalent(ctx context.Context, siteID string, date, start, end time.Time, kind Kind) (Shift, error)

	// UpdateTimes changes a shift's interval and notes.
	UpdateTimes(ctx context.Context, id string, start, end time.Time, notes *string) error

	// Delete removes a shift. Assignments must be cascaded first, in the same
	// transaction.
	Delete(ctx context.Context, id string) error

	// ListBySiteAndDateRange returns a site's shifts between two dates,
	// ordered by date then start time.
	ListBySiteAndDateRange(ctx context.Context, siteID string, from, to time.Time) ([]Shift, error)
}
