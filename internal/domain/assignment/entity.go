package assignment

import (
	"time"
)

// Status is the lifecycle state of a worker-to-shift assignment.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusMissed     Status = "missed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known assignment status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusInProgress, StatusCompleted, StatusMissed, StatusCancelled:
		return true
	}
	return false
}

// transitions lists every allowed lifecycle edge. Anything not listed is an
// invalid transition.
var transitions = map[Status][]Status{
	StatusDraft:      {StatusScheduled, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusMissed, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusMissed, StatusCancelled},
	// Manual correction may re-open a closed assignment when it supplies a
	// clock-in without a clock-out (partial attendance).
	StatusCompleted: {StatusInProgress},
	StatusMissed:    {StatusInProgress, StatusCompleted},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Assignment is one worker's obligation to work one shift.
type Assignment struct {
	ID         string
	WorkerID   string
	ShiftID    string
	AssignedBy string
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Transition moves the assignment to next, failing with ErrInvalidTransition
// when the state machine forbids it. The caller persists the change in the
// same transaction as the attendance write that triggered it.
func (a *Assignment) Transition(next Status) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}
