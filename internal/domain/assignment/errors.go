package assignment

import "errors"

// Assignment domain errors
var (
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrDuplicateAssignment = errors.New("worker is already assigned to this shift")
	ErrInvalidTransition   = errors.New("invalid assignment status transition")
	ErrScheduleConflict    = errors.New("worker has a conflicting shift on this date")
)
