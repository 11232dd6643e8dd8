package shift

import (
	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
)

// CreateShiftRequest creates one shift and assigns one or more workers to it.
type CreateShiftRequest struct {
	SiteID    string   `json:"site_id" validate:"required,uuid4"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string   `json:"end_time" validate:"required,datetime=15:04"`
	Kind      Kind     `json:"kind" validate:"required,oneof=regular emergency"`
	WorkerIDs []string `json:"worker_ids" validate:"required,min=1,dive,uuid4"`
	Notes     *string  `json:"notes,omitempty"`
	ActorID   string   `json:"actor_id" validate:"required,uuid4"`
}

// CreateRecurringRequest expands a weekday pattern over a date range, creating
// one shift per matching date per successfully assigned worker.
type CreateRecurringRequest struct {
	SiteID     string   `json:"site_id" validate:"required,uuid4"`
	StartDate  string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	DaysOfWeek []int    `json:"days_of_week" validate:"required,min=1,dive,min=0,max=6"`
	StartTime  string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string   `json:"end_time" validate:"required,datetime=15:04"`
	Kind       Kind     `json:"kind" validate:"required,oneof=regular emergency"`
	WorkerIDs  []string `json:"worker_ids" validate:"required,min=1,dive,uuid4"`
	Notes      *string  `json:"notes,omitempty"`
	ActorID    string   `json:"actor_id" validate:"required,uuid4"`
}

// MoveShiftRequest relocates one worker's shift to a new date, preserving the
// time-of-day interval and site.
type MoveShiftRequest struct {
	ShiftID  string `json:"shift_id" validate:"required,uuid4"`
	NewDate  string `json:"new_date" validate:"required,datetime=2006-01-02"`
	WorkerID string `json:"worker_id" validate:"required,uuid4"`
	ActorID  string `json:"actor_id" validate:"required,uuid4"`
}

// UpdateShiftTimesRequest changes a shift's interval after re-running conflict
// checks for every assigned worker.
type UpdateShiftTimesRequest struct {
	ShiftID   string  `json:"shift_id" validate:"required,uuid4"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string  `json:"end_time" validate:"required,datetime=15:04"`
	Notes     *string `json:"notes,omitempty"`
}

// AssignmentResult reports one worker's assignment created by a scheduling call.
type AssignmentResult struct {
	AssignmentID string            `json:"assignment_id"`
	WorkerID     string            `json:"worker_id"`
	Status       assignment.Status `json:"status"`
}

// ShiftResponse is the API shape of a shift.
type ShiftResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	SiteID    string  `json:"site_id"`
	CreatedBy string  `json:"created_by"`
	Kind      Kind    `json:"kind"`
	Notes     *string `json:"notes,omitempty"`
}

// CreateShiftResponse carries the committed shift, the assignments that
// succeeded, and per-worker warnings for the ones that did not.
type CreateShiftResponse struct {
	Shift       ShiftResponse      `json:"shift"`
	Assignments []AssignmentResult `json:"assignments"`
	Warnings    []string           `json:"warnings,omitempty"`
}

// CreateRecurringResponse lists every shift created by a recurring call plus
// per-date-per-worker warnings.
type CreateRecurringResponse struct {
	Created  []CreateShiftResponse `json:"created_shifts"`
	Warnings []string              `json:"warnings,omitempty"`
}

// MoveShiftResponse reports the source shift and the target it moved to.
type MoveShiftResponse struct {
	OldShiftID string        `json:"old_shift_id"`
	NewShift   ShiftResponse `json:"new_shift"`
}
