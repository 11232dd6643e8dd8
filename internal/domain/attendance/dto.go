package attendance

import (
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
)

// ClockInRequest starts an attendance session for an assigned shift.
type ClockInRequest struct {
	WorkerID string  `json:"worker_id" validate:"required,uuid4"`
	ShiftID  string  `json:"shift_id" validate:"required,uuid4"`
	Method   Method  `json:"method" validate:"required,oneof=geofence qrcode manual"`
	Code     string  `json:"code" validate:"required_if=Method qrcode"`
	Notes    *string `json:"notes,omitempty"`
}

// ClockOutRequest closes the open attendance session for a shift.
type ClockOutRequest struct {
	WorkerID string  `json:"worker_id" validate:"required,uuid4"`
	ShiftID  string  `json:"shift_id" validate:"required,uuid4"`
	Method   Method  `json:"method" validate:"required,oneof=geofence qrcode manual"`
	Notes    *string `json:"notes,omitempty"`
}

// CorrectionRequest creates or fixes an attendance record by hand. Times are
// RFC3339 instants; omitting both marks the worker absent unless an explicit
// status is supplied.
type CorrectionRequest struct {
	WorkerID     string  `json:"worker_id" validate:"required,uuid4"`
	ShiftID      string  `json:"shift_id" validate:"required,uuid4"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       *Status `json:"status,omitempty"`
	ApprovedBy   string  `json:"approved_by" validate:"required,uuid4"`
	Reason       string  `json:"reason" validate:"required"`
	Notes        *string `json:"notes,omitempty"`
}

// ClockInResponse reports the outcome of a clock-in.
type ClockInResponse struct {
	AttendanceID     string            `json:"attendance_id"`
	ClockInTime      time.Time         `json:"clock_in_time"`
	Status           Status            `json:"status"`
	AssignmentStatus assignment.Status `json:"assignment_status"`
}

// ClockOutResponse reports the outcome of a clock-out.
type ClockOutResponse struct {
	AttendanceID     string            `json:"attendance_id"`
	ClockInTime      time.Time         `json:"clock_in_time"`
	ClockOutTime     time.Time         `json:"clock_out_time"`
	HoursWorked      float64           `json:"hours_worked"`
	Status           Status            `json:"status"`
	AssignmentStatus assignment.Status `json:"assignment_status"`
}

// CorrectionResponse reports the record and the assignment status derived from it.
type CorrectionResponse struct {
	Record           AttendanceResponse `json:"record"`
	AssignmentStatus assignment.Status  `json:"assignment_status"`
}

// AttendanceResponse is the API shape of an attendance record.
type AttendanceResponse struct {
	ID             string     `json:"id"`
	WorkerID       string     `json:"worker_id"`
	ShiftID        string     `json:"shift_id"`
	ClockInTime    *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime   *time.Time `json:"clock_out_time,omitempty"`
	HoursWorked    float64    `json:"hours_worked"`
	Method         Method     `json:"method"`
	Status         Status     `json:"status"`
	Notes          *string    `json:"notes,omitempty"`
	ManualOverride bool       `json:"manual_override"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
}

// Filter narrows attendance listings.
type Filter struct {
	WorkerID *string
	ShiftID  *string
	Status   *Status
	From     *time.Time
	To       *time.Time
}
