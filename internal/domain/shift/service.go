package shift

import (
	"context"
)

// ShiftService orchestrates shift creation and rescheduling. Creation commits
// the shift together with the assignments that passed validation; an operation
// where every worker fails rolls back entirely.
type ShiftService interface {
	CreateShiftWithWorkers(ctx context.Context, req CreateShiftRequest) (CreateShiftResponse, error)
	CreateRecurringShifts(ctx context.Context, req CreateRecurringRequest) (CreateRecurringResponse, error)
	MoveShiftToDate(ctx context.Context, req MoveShiftRequest) (MoveShiftResponse, error)
	UpdateShiftTimes(ctx context.Context, req UpdateShiftTimesRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, shiftID string) error
	GetShift(ctx context.Context, shiftID string) (ShiftResponse, []AssignmentResult, error)
	ListBySite(ctx context.Context, siteID, from, to string) ([]ShiftResponse, error)
}
