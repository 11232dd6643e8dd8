package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrInvalidShiftTimes    = errors.New("end time must be after start time")
	ErrAllAssignmentsFailed = errors.New("all worker assignments failed")
	ErrNoShiftsCreated      = errors.New("no shifts created due to conflicts")
)
