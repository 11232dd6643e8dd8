package attendance

import (
	"time"
)

// Method is how a clock event was verified.
type Method string

const (
	MethodGeofence Method = "geofence"
	MethodQRCode   Method = "qrcode"
	MethodManual   Method = "manual"
)

// Valid reports whether m is a known verification method.
func (m Method) Valid() bool {
	switch m {
	case MethodGeofence, MethodQRCode, MethodManual:
		return true
	}
	return false
}

// Status is the classification verdict for an attendance record.
type Status string

const (
	StatusPending           Status = "pending"
	StatusPresent           Status = "present"
	StatusLateArrival       Status = "late_arrival"
	StatusEarlyDeparture    Status = "early_departure"
	StatusLateAndEarly      Status = "late_and_early"
	StatusOvertime          Status = "overtime"
	StatusTooEarly          Status = "too_early"
	StatusTooLate           Status = "too_late"
	StatusInvalidTimes      Status = "invalid_times"
	StatusAbsent            Status = "absent"
	StatusPartialAttendance Status = "partial_attendance"
	StatusOnLeave           Status = "on_leave"
	StatusNoShow            Status = "no_show"
	StatusExcusedAbsence    Status = "excused_absence"
)

// Valid reports whether s is a known attendance status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPresent, StatusLateArrival, StatusEarlyDeparture,
		StatusLateAndEarly, StatusOvertime, StatusTooEarly, StatusTooLate,
		StatusInvalidTimes, StatusAbsent, StatusPartialAttendance, StatusOnLeave,
		StatusNoShow, StatusExcusedAbsence:
		return true
	}
	return false
}

// AttendanceRecord is the factual presence log for one worker on one shift.
// Records are never deleted in normal operation; corrections update in place
// with the manual-override flag set.
type AttendanceRecord struct {
	ID             string
	WorkerID       string
	ShiftID        string
	ClockInTime    time.Time
	ClockOutTime   *time.Time
	Hours          float64
	Method         Method
	Status         Status
	Notes          *string
	ManualOverride bool
	ApprovedBy     *string
	CorrectionNote *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Open reports whether the record still awaits a clock-out.
func (r AttendanceRecord) Open() bool {
	return r.ClockOutTime == nil
}
