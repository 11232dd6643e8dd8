package attendance

import (
	"context"
)

// AttendanceService orchestrates clock-in, clock-out and manual correction.
// Every multi-record update commits atomically; an attendance write and its
// assignment transition are never persisted apart.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error)
	CorrectAttendance(ctx context.Context, req CorrectionRequest) (CorrectionResponse, error)
	List(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
}
