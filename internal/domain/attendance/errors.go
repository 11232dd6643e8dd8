package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrAlreadyClockedIn     = errors.New("worker already has an active clock-in for this shift")
	ErrNoOpenRecord         = errors.New("no active clock-in record found for this shift")
	ErrInvalidTimes         = errors.New("clock-out time must be after clock-in time")
	ErrInvalidCode          = errors.New("invalid or expired code")
	ErrNotClockable         = errors.New("shift is not available for clock-in")
	ErrNotInProgress        = errors.New("shift is not in progress")
	ErrNotScheduledForShift = errors.New("worker was not scheduled for this shift")
	ErrApproverNotFound     = errors.New("approver not found")
	ErrUnknownStatus        = errors.New("unknown attendance status")
)
