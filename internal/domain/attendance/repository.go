package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records. Writes that
// belong to a clock or correction flow run on the transaction carried by ctx.
type AttendanceRepository interface {
	// Create inserts a new record. An existing open record for the same
	// (worker, shift) violates the open-record unique index and fails with
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetOpenByWorkerAndShift returns the open record (clock-out null) for the
	// pair, or ErrNoOpenRecord.
	GetOpenByWorkerAndShift(ctx context.Context, workerID, shiftID string) (AttendanceRecord, error)

	// GetByWorkerAndShift returns the latest record for the pair regardless of
	// state, or ErrAttendanceNotFound. Used by the correction upsert.
	GetByWorkerAndShift(ctx context.Context, workerID, shiftID string) (AttendanceRecord, error)

	// Update overwrites a record's mutable fields.
	Update(ctx context.Context, record AttendanceRecord) error

	// List returns records matching the filter, newest clock-in first.
	List(ctx context.Context, filter Filter) ([]AttendanceRecord, error)
}
