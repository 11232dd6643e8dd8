package response

import (
	"errors"
	"net/http"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
	"github.com/clearshift/workforce-backend-go/internal/domain/attendance"
	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/domain/site"
	"github.com/clearshift/workforce-backend-go/internal/domain/worker"
	"github.com/clearshift/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidShiftTimes):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, shift.ErrAllAssignmentsFailed):
		Conflict(w, "No worker could be assigned to the shift")
	case errors.Is(err, shift.ErrNoShiftsCreated):
		Conflict(w, "No shifts could be created in the requested range")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrDuplicateAssignment):
		Conflict(w, "Worker is already assigned to this shift")
	case errors.Is(err, assignment.ErrScheduleConflict):
		Conflict(w, "Worker has an overlapping assignment")
	case errors.Is(err, assignment.ErrInvalidTransition):
		Conflict(w, "Assignment state does not allow this operation")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Worker already has an open attendance record for this shift")
	case errors.Is(err, attendance.ErrNoOpenRecord):
		Conflict(w, "No open attendance record to clock out of")
	case errors.Is(err, attendance.ErrNotClockable):
		Conflict(w, "Assignment is not in a clockable state")
	case errors.Is(err, attendance.ErrNotInProgress):
		Conflict(w, "Assignment is not in progress")
	case errors.Is(err, attendance.ErrInvalidTimes):
		BadRequest(w, "Clock-out must be after clock-in", nil)
	case errors.Is(err, attendance.ErrInvalidCode):
		BadRequest(w, "Verification code is invalid or expired", nil)
	case errors.Is(err, attendance.ErrNotScheduledForShift):
		BadRequest(w, "Worker was not scheduled for this shift", nil)
	case errors.Is(err, attendance.ErrApproverNotFound):
		BadRequest(w, "Approver does not reference a valid worker", nil)
	case errors.Is(err, attendance.ErrUnknownStatus):
		BadRequest(w, "Unknown attendance status", nil)

	// Directory errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
