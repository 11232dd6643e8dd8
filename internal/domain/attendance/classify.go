package attendance

import (
	"time"
)

// Window is the scheduled interval a clock event is judged against.
type Window struct {
	Start time.Time
	End   time.Time
}

// Thresholds configures the classification cut-offs. All comparisons are
// strict: a clock-in exactly at the threshold is still on time.
type Thresholds struct {
	Late           time.Duration
	EarlyDeparture time.Duration
	Overtime       time.Duration
	TooEarly       time.Duration
}

// DefaultThresholds returns the standard cut-offs: 15 minutes late grace,
// 30 minutes early-departure and overtime margins, 60 minutes too-early limit.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Late:           15 * time.Minute,
		EarlyDeparture: 30 * time.Minute,
		Overtime:       30 * time.Minute,
		TooEarly:       60 * time.Minute,
	}
}

// Classify maps scheduled versus actual times to an attendance status. It is a
// pure function of its inputs and total over well-formed ones: invalid_times is
// a returned value, not an error.
//
// too_early and too_late short-circuit before the late/overtime checks, so a
// clock-in 90 minutes early is classified solely as too_early regardless of the
// clock-out.
func Classify(window *Window, th Thresholds, clockIn time.Time, clockOut *time.Time) Status {
	if window == nil {
		return StatusPresent
	}

	if clockIn.Before(window.Start.Add(-th.TooEarly)) {
		return StatusTooEarly
	}
	if clockIn.After(window.End) {
		return StatusTooLate
	}

	isLate := clockIn.After(window.Start.Add(th.Late))

	if clockOut == nil {
		if isLate {
			return StatusLateArrival
		}
		return StatusPresent
	}

	if !clockOut.After(clockIn) {
		return StatusInvalidTimes
	}

	isEarlyDeparture := clockOut.Before(window.End.Add(-th.EarlyDeparture))
	isOvertime := clockOut.After(window.End.Add(th.Overtime))

	switch {
	case isLate && isEarlyDeparture:
		return StatusLateAndEarly
	case isLate:
		return StatusLateArrival
	case isEarlyDeparture:
		return StatusEarlyDeparture
	case isOvertime:
		return StatusOvertime
	default:
		return StatusPresent
	}
}
