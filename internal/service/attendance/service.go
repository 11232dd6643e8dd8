package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
	"github.com/clearshift/workforce-backend-go/internal/domain/attendance"
	"github.com/clearshift/workforce-backend-go/internal/domain/notification"
	"github.com/clearshift/workforce-backend-go/internal/domain/qrcode"
	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/domain/worker"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/clearshift/workforce-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	assignment.AssignmentRepository
	shift.ShiftRepository
	workerDirectory worker.WorkerDirectory
	verifier        qrcode.Verifier
	sink            notification.Sink
	thresholds      attendance.Thresholds
	logger          *slog.Logger
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo shift.ShiftRepository,
	workerDirectory worker.WorkerDirectory,
	verifier qrcode.Verifier,
	sink notification.Sink,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		AssignmentRepository: assignmentRepo,
		ShiftRepository:      shiftRepo,
		workerDirectory:      workerDirectory,
		verifier:             verifier,
		sink:                 sink,
		thresholds:           attendance.DefaultThresholds(),
		logger:               logger,
	}
}

func toAttendanceResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             rec.ID,
		WorkerID:       rec.WorkerID,
		ShiftID:        rec.ShiftID,
		ClockOutTime:   rec.ClockOutTime,
		HoursWorked:    rec.Hours,
		Method:         rec.Method,
		Status:         rec.Status,
		Notes:          rec.Notes,
		ManualOverride: rec.ManualOverride,
		ApprovedBy:     rec.ApprovedBy,
	}
	if !rec.ClockInTime.IsZero() {
		clockIn := rec.ClockInTime
		resp.ClockInTime = &clockIn
	}
	return resp
}

// startsShift reports whether a clock-in classified as verdict begins the
// shift. Attempts outside the acceptance window are recorded but do not move
// the assignment to in_progress.
func startsShift(verdict attendance.Status) bool {
	return verdict != attendance.StatusTooEarly && verdict != attendance.StatusTooLate
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockInResponse, error) {
	now := time.Now().UTC()

	var resp attendance.ClockInResponse

	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sh, err := a.ShiftRepository.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		asg, err := a.AssignmentRepository.GetByWorkerAndShift(ctx, req.WorkerID, req.ShiftID)
		if err != nil {
			return err
		}
		if asg.Status != assignment.StatusScheduled && asg.Status != assignment.StatusInProgress {
			return attendance.ErrNotClockable
		}

		if _, err := a.AttendanceRepository.GetOpenByWorkerAndShift(ctx, req.WorkerID, req.ShiftID); err == nil {
			return attendance.ErrAlreadyClockedIn
		} else if !errors.Is(err, attendance.ErrNoOpenRecord) {
			return err
		}

		if req.Method == attendance.MethodQRCode {
			ok, err := a.verifier.Verify(ctx, sh.ID, sh.SiteID, req.Code)
			if err != nil {
				return fmt.Errorf("failed to verify code: %w", err)
			}
			if !ok {
				return attendance.ErrInvalidCode
			}
		}

		window := &attendance.Window{Start: sh.StartTime, End: sh.EndTime}
		verdict := attendance.Classify(window, a.thresholds, now, nil)

		rec, err := a.AttendanceRepository.Create(ctx, attendance.AttendanceRecord{
			WorkerID:    req.WorkerID,
			ShiftID:     req.ShiftID,
			ClockInTime: now,
			Method:      req.Method,
			Status:      verdict,
			Notes:       req.Notes,
		})
		if err != nil {
			return err
		}

		if asg.Status == assignment.StatusScheduled && startsShift(verdict) {
			if err := asg.Transition(assignment.StatusInProgress); err != nil {
				return err
			}
			if err := a.AssignmentRepository.UpdateStatus(ctx, asg.ID, asg.Status); err != nil {
				return err
			}
		}

		resp = attendance.ClockInResponse{
			AttendanceID:     rec.ID,
			ClockInTime:      rec.ClockInTime,
			Status:           rec.Status,
			AssignmentStatus: asg.Status,
		}
		return nil
	})
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	a.sink.Notify(ctx, notification.Event{
		WorkerID:   req.WorkerID,
		ShiftID:    req.ShiftID,
		Kind:       notification.EventClockInRecorded,
		OccurredAt: now,
	})

	return resp, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockOutResponse, error) {
	now := time.Now().UTC()

	var resp attendance.ClockOutResponse

	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sh, err := a.ShiftRepository.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		asg, err := a.AssignmentRepository.GetByWorkerAndShift(ctx, req.WorkerID, req.ShiftID)
		if err != nil {
			return err
		}
		if asg.Status != assignment.StatusInProgress {
			return attendance.ErrNotInProgress
		}

		rec, err := a.AttendanceRepository.GetOpenByWorkerAndShift(ctx, req.WorkerID, req.ShiftID)
		if err != nil {
			return err
		}

		hours, err := timeutil.DurationHours(rec.ClockInTime, now)
		if err != nil {
			return attendance.ErrInvalidTimes
		}

		window := &attendance.Window{Start: sh.StartTime, End: sh.EndTime}
		clockOut := now
		rec.ClockOutTime = &clockOut
		rec.Hours = hours
		rec.Status = attendance.Classify(window, a.thresholds, rec.ClockInTime, rec.ClockOutTime)
		if req.Notes != nil {
			rec.Notes = req.Notes
		}

		if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
			return err
		}

		if err := asg.Transition(assignment.StatusCompleted); err != nil {
			return err
		}
		if err := a.AssignmentRepository.UpdateStatus(ctx, asg.ID, asg.Status); err != nil {
			return err
		}

		resp = attendance.ClockOutResponse{
			AttendanceID:     rec.ID,
			ClockInTime:      rec.ClockInTime,
			ClockOutTime:     clockOut,
			HoursWorked:      hours,
			Status:           rec.Status,
			AssignmentStatus: asg.Status,
		}
		return nil
	})
	if err != nil {
		return attendance.ClockOutResponse{}, err
	}

	a.sink.Notify(ctx, notification.Event{
		WorkerID:   req.WorkerID,
		ShiftID:    req.ShiftID,
		Kind:       notification.EventClockOutRecorded,
		OccurredAt: now,
	})

	return resp, nil
}

// derivedAssignmentStatus maps a corrected attendance verdict to the
// assignment state that should accompany it. ok is false when the verdict
// carries no lifecycle implication.
func derivedAssignmentStatus(verdict attendance.Status) (assignment.Status, bool) {
	switch verdict {
	case attendance.StatusAbsent, attendance.StatusNoShow:
		return assignment.StatusMissed, true
	case attendance.StatusPresent, attendance.StatusLateArrival, attendance.StatusEarlyDeparture,
		attendance.StatusLateAndEarly, attendance.StatusOvertime:
		return assignment.StatusCompleted, true
	case attendance.StatusPartialAttendance:
		return assignment.StatusInProgress, true
	}
	return "", false
}

func parseRFC3339Ptr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

// CorrectAttendance implements attendance.AttendanceService. The record write
// and the derived assignment transition commit together or not at all.
func (a *AttendanceServiceImpl) CorrectAttendance(ctx context.Context, req attendance.CorrectionRequest) (attendance.CorrectionResponse, error) {
	if _, err := a.workerDirectory.GetByID(ctx, req.ApprovedBy); err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return attendance.CorrectionResponse{}, attendance.ErrApproverNotFound
		}
		return attendance.CorrectionResponse{}, err
	}

	clockIn, err := parseRFC3339Ptr(req.ClockInTime)
	if err != nil {
		return attendance.CorrectionResponse{}, attendance.ErrInvalidTimes
	}
	clockOut, err := parseRFC3339Ptr(req.ClockOutTime)
	if err != nil {
		return attendance.CorrectionResponse{}, attendance.ErrInvalidTimes
	}
	if clockIn != nil && clockOut != nil && !clockOut.After(*clockIn) {
		return attendance.CorrectionResponse{}, attendance.ErrInvalidTimes
	}
	if clockIn == nil && clockOut != nil {
		return attendance.CorrectionResponse{}, attendance.ErrInvalidTimes
	}
	if req.Status != nil && !req.Status.Valid() {
		return attendance.CorrectionResponse{}, attendance.ErrUnknownStatus
	}

	var resp attendance.CorrectionResponse

	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sh, err := a.ShiftRepository.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		asg, err := a.AssignmentRepository.GetByWorkerAndShift(ctx, req.WorkerID, req.ShiftID)
		if err != nil {
			if errors.Is(err, assignment.ErrAssignmentNotFound) {
				return attendance.ErrNotScheduledForShift
			}
			return err
		}

		var verdict attendance.Status
		switch {
		case req.Status != nil:
			verdict = *req.Status
		case clockIn == nil:
			verdict = attendance.StatusAbsent
		case clockOut == nil:
			verdict = attendance.StatusPartialAttendance
		default:
			window := &attendance.Window{Start: sh.StartTime, End: sh.EndTime}
			verdict = attendance.Classify(window, a.thresholds, *clockIn, clockOut)
		}

		var hours float64
		if clockIn != nil && clockOut != nil {
			hours, err = timeutil.DurationHours(*clockIn, *clockOut)
			if err != nil {
				return attendance.ErrInvalidTimes
			}
		}

		reason := req.Reason
		rec, err := a.AttendanceRepository.GetByWorkerAndShift(ctx, req.WorkerID, req.ShiftID)
		switch {
		case err == nil:
			if clockIn != nil {
				rec.ClockInTime = *clockIn
			}
			rec.ClockOutTime = clockOut
			rec.Hours = hours
			rec.Status = verdict
			rec.ManualOverride = true
			rec.ApprovedBy = &req.ApprovedBy
			rec.CorrectionNote = &reason
			if req.Notes != nil {
				rec.Notes = req.Notes
			}
			if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
				return err
			}
		case errors.Is(err, attendance.ErrAttendanceNotFound):
			fresh := attendance.AttendanceRecord{
				WorkerID:       req.WorkerID,
				ShiftID:        req.ShiftID,
				Hours:          hours,
				Method:         attendance.MethodManual,
				Status:         verdict,
				Notes:          req.Notes,
				ManualOverride: true,
				ApprovedBy:     &req.ApprovedBy,
				CorrectionNote: &reason,
			}
			if clockIn != nil {
				fresh.ClockInTime = *clockIn
			}
			fresh.ClockOutTime = clockOut
			rec, err = a.AttendanceRepository.Create(ctx, fresh)
			if err != nil {
				return err
			}
		default:
			return err
		}

		if next, ok := derivedAssignmentStatus(verdict); ok {
			// A correction that completes a never-clocked assignment walks the
			// same edges a live round trip would have.
			if next == assignment.StatusCompleted && asg.Status == assignment.StatusScheduled {
				if err := asg.Transition(assignment.StatusInProgress); err != nil {
					return err
				}
			}
			if err := asg.Transition(next); err != nil {
				return err
			}
			if err := a.AssignmentRepository.UpdateStatus(ctx, asg.ID, asg.Status); err != nil {
				return err
			}
		}

		resp = attendance.CorrectionResponse{
			Record:           toAttendanceResponse(rec),
			AssignmentStatus: asg.Status,
		}
		return nil
	})
	if err != nil {
		return attendance.CorrectionResponse{}, err
	}

	a.sink.Notify(ctx, notification.Event{
		WorkerID:   req.WorkerID,
		ShiftID:    req.ShiftID,
		Kind:       notification.EventAttendanceCorrected,
		OccurredAt: time.Now().UTC(),
	})

	return resp, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}

	return responses, nil
}
