package assignment

import (
	"context"
	"time"
)

// AssignmentRepository defines data access for worker-to-shift assignments.
// Reads performed as part of a multi-step operation must run on the operation's
// transaction (carried by ctx) so conflict checks and inserts serialize.
type AssignmentRepository interface {
	// Create inserts a new assignment. A duplicate (worker, shift) pair fails
	// with ErrDuplicateAssignment via the unique constraint.
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// GetByWorkerAndShift retrieves the worker's assignment for one shift.
	GetByWorkerAndShift(ctx context.Context, workerID, shiftID string) (Assignment, error)

	// ListIntervalsByWorkerAndDate returns the worker's scheduled intervals on
	// a date, joined with shift times, for conflict checking.
	ListIntervalsByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]ScheduledInterval, error)

	// UpdateStatus persists a lifecycle transition.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// DeleteByWorkerAndShift removes one worker's assignment from a shift.
	DeleteByWorkerAndShift(ctx context.Context, workerID, shiftID string) error

	// DeleteByShift removes every assignment on a shift (application-level
	// cascade ahead of shift deletion).
	DeleteByShift(ctx context.Context, shiftID string) error

	// ListByShift returns all assignments on a shift.
	ListByShift(ctx context.Context, shiftID string) ([]Assignment, error)
}
