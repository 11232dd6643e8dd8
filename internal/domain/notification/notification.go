package notification

import (
	"context"
	"time"
)

// EventKind names a scheduling or attendance event a worker should hear about.
type EventKind string

const (
	EventShiftAssigned       EventKind = "shift_assigned"
	EventShiftMoved          EventKind = "shift_moved"
	EventClockInRecorded     EventKind = "clock_in_recorded"
	EventClockOutRecorded    EventKind = "clock_out_recorded"
	EventAttendanceCorrected EventKind = "attendance_corrected"
)

// Event is a notification intent handed to the sink after a successful commit.
type Event struct {
	WorkerID   string    `json:"worker_id"`
	ShiftID    string    `json:"shift_id"`
	Kind       EventKind `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink delivers events best-effort. Notify is fire-and-forget: it must never
// be called inside a store transaction and its failures must not affect the
// operation that produced the event.
type Sink interface {
	Notify(ctx context.Context, event Event)
}
