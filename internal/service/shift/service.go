package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
	"github.com/clearshift/workforce-backend-go/internal/domain/notification"
	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/domain/site"
	"github.com/clearshift/workforce-backend-go/internal/domain/worker"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/clearshift/workforce-backend-go/internal/pkg/timeutil"
)

type ShiftServiceImpl struct {
	tx database.TxManager
	shift.ShiftRepository
	assignment.AssignmentRepository
	workerDirectory worker.WorkerDirectory
	siteDirectory   site.SiteDirectory
	sink            notification.Sink
	logger          *slog.Logger
}

func NewShiftService(
	tx database.TxManager,
	shiftRepo shift.ShiftRepository,
	assignmentRepo assignment.AssignmentRepository,
	workerDirectory worker.WorkerDirectory,
	siteDirectory site.SiteDirectory,
	sink notification.Sink,
	logger *slog.Logger,
) shift.ShiftService {
	return &ShiftServiceImpl{
		tx:                   tx,
		ShiftRepository:      shiftRepo,
		AssignmentRepository: assignmentRepo,
		workerDirectory:      workerDirectory,
		siteDirectory:        siteDirectory,
		sink:                 sink,
		logger:               logger,
	}
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        s.ID,
		Date:      timeutil.FormatDate(s.Date),
		StartTime: timeutil.FormatClock(s.StartTime),
		EndTime:   timeutil.FormatClock(s.EndTime),
		SiteID:    s.SiteID,
		CreatedBy: s.CreatedBy,
		Kind:      s.Kind,
		Notes:     s.Notes,
	}
}

// dedupe preserves first-seen order while dropping repeated worker IDs, so a
// request listing the same worker twice produces one assignment and no warning.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseInterval(dateStr, startStr, endStr string) (date, start, end time.Time, err error) {
	date, err = timeutil.ParseDate(dateStr)
	if err != nil {
		return date, start, end, fmt.Errorf("failed to parse date: %w", err)
	}
	startClock, err := timeutil.ParseClock(startStr)
	if err != nil {
		return date, start, end, fmt.Errorf("failed to parse start time: %w", err)
	}
	endClock, err := timeutil.ParseClock(endStr)
	if err != nil {
		return date, start, end, fmt.Errorf("failed to parse end time: %w", err)
	}
	start = timeutil.At(date, startClock)
	end = timeutil.At(date, endClock)
	if !end.After(start) {
		return date, start, end, shift.ErrInvalidShiftTimes
	}
	return date, start, end, nil
}

// assignWorkers validates and assigns each worker to an already-created shift.
// It runs on the caller's transaction. Per-worker failures become warnings;
// only infrastructure errors abort.
func (s *ShiftServiceImpl) assignWorkers(ctx context.Context, created shift.Shift, workerIDs []string, actorID string) ([]shift.AssignmentResult, []string, error) {
	var (
		results  []shift.AssignmentResult
		warnings []string
	)

	for _, workerID := range workerIDs {
		if _, err := s.workerDirectory.GetByID(ctx, workerID); err != nil {
			if errors.Is(err, worker.ErrWorkerNotFound) {
				warnings = append(warnings, fmt.Sprintf("worker %s: not found or inactive", workerID))
				continue
			}
			return nil, nil, err
		}

		authorized, err := s.workerDirectory.AuthorizedForSite(ctx, workerID, created.SiteID)
		if err != nil {
			return nil, nil, err
		}
		if !authorized {
			warnings = append(warnings, fmt.Sprintf("worker %s: not authorized for site %s", workerID, created.SiteID))
			continue
		}

		intervals, err := s.AssignmentRepository.ListIntervalsByWorkerAndDate(ctx, workerID, created.Date)
		if err != nil {
			return nil, nil, err
		}
		if assignment.HasConflict(intervals, workerID, created.Date, created.StartTime, created.EndTime, created.ID) {
			warnings = append(warnings, fmt.Sprintf("worker %s: schedule conflict on %s", workerID, timeutil.FormatDate(created.Date)))
			continue
		}

		a, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
			WorkerID:   workerID,
			ShiftID:    created.ID,
			AssignedBy: actorID,
			Status:     assignment.StatusScheduled,
		})
		if err != nil {
			if errors.Is(err, assignment.ErrDuplicateAssignment) {
				warnings = append(warnings, fmt.Sprintf("worker %s: already assigned", workerID))
				continue
			}
			return nil, nil, err
		}

		results = append(results, shift.AssignmentResult{
			AssignmentID: a.ID,
			WorkerID:     a.WorkerID,
			Status:       a.Status,
		})
	}

	return results, warnings, nil
}

func (s *ShiftServiceImpl) notifyAssigned(ctx context.Context, shiftID string, results []shift.AssignmentResult, kind notification.EventKind) {
	now := time.Now().UTC()
	for _, res := range results {
		s.sink.Notify(ctx, notification.Event{
			WorkerID:   res.WorkerID,
			ShiftID:    shiftID,
			Kind:       kind,
			OccurredAt: now,
		})
	}
}

// CreateShiftWithWorkers implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShiftWithWorkers(ctx context.Context, req shift.CreateShiftRequest) (shift.CreateShiftResponse, error) {
	date, start, end, err := parseInterval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return shift.CreateShiftResponse{}, err
	}

	if _, err := s.siteDirectory.GetByID(ctx, req.SiteID); err != nil {
		return shift.CreateShiftResponse{}, err
	}

	var resp shift.CreateShiftResponse

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := s.ShiftRepository.Create(ctx, shift.Shift{
			Date:      date,
			StartTime: start,
			EndTime:   end,
			SiteID:    req.SiteID,
			CreatedBy: req.ActorID,
			Kind:      req.Kind,
			Notes:     req.Notes,
		})
		if err != nil {
			return err
		}

		results, warnings, err := s.assignWorkers(ctx, created, dedupe(req.WorkerIDs), req.ActorID)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return shift.ErrAllAssignmentsFailed
		}

		resp = shift.CreateShiftResponse{
			Shift:       toShiftResponse(created),
			Assignments: results,
			Warnings:    warnings,
		}
		return nil
	})
	if err != nil {
		return shift.CreateShiftResponse{}, err
	}

	s.notifyAssigned(ctx, resp.Shift.ID, resp.Assignments, notification.EventShiftAssigned)

	return resp, nil
}

// CreateRecurringShifts implements shift.ShiftService. Each matching date gets
// its own transaction: a date where every worker fails is skipped with a
// warning and does not undo the dates already committed.
func (s *ShiftServiceImpl) CreateRecurringShifts(ctx context.Context, req shift.CreateRecurringRequest) (shift.CreateRecurringResponse, error) {
	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return shift.CreateRecurringResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return shift.CreateRecurringResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return shift.CreateRecurringResponse{}, shift.ErrInvalidShiftTimes
	}

	wanted := make(map[time.Weekday]bool, len(req.DaysOfWeek))
	for _, d := range req.DaysOfWeek {
		wanted[time.Weekday(d)] = true
	}

	var resp shift.CreateRecurringResponse

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if !wanted[date.Weekday()] {
			continue
		}

		created, err := s.CreateShiftWithWorkers(ctx, shift.CreateShiftRequest{
			SiteID:    req.SiteID,
			Date:      timeutil.FormatDate(date),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Kind:      req.Kind,
			WorkerIDs: req.WorkerIDs,
			Notes:     req.Notes,
			ActorID:   req.ActorID,
		})
		if err != nil {
			if errors.Is(err, shift.ErrAllAssignmentsFailed) {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: all worker assignments failed", timeutil.FormatDate(date)))
				continue
			}
			return shift.CreateRecurringResponse{}, err
		}

		resp.Created = append(resp.Created, created)
		resp.Warnings = append(resp.Warnings, created.Warnings...)
	}

	if len(resp.Created) == 0 {
		return shift.CreateRecurringResponse{}, shift.ErrNoShiftsCreated
	}

	return resp, nil
}

// MoveShiftToDate implements shift.ShiftService. The target shift is reused
// when an equivalent one already exists on the new date, otherwise created.
// The worker's old assignment is removed in the same transaction.
func (s *ShiftServiceImpl) MoveShiftToDate(ctx context.Context, req shift.MoveShiftRequest) (shift.MoveShiftResponse, error) {
	newDate, err := timeutil.ParseDate(req.NewDate)
	if err != nil {
		return shift.MoveShiftResponse{}, fmt.Errorf("failed to parse new date: %w", err)
	}

	var resp shift.MoveShiftResponse

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		source, err := s.ShiftRepository.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		if _, err := s.AssignmentRepository.GetByWorkerAndShift(ctx, req.WorkerID, source.ID); err != nil {
			return err
		}

		newStart := timeutil.At(newDate, source.StartTime)
		newEnd := timeutil.At(newDate, source.EndTime)

		intervals, err := s.AssignmentRepository.ListIntervalsByWorkerAndDate(ctx, req.WorkerID, newDate)
		if err != nil {
			return err
		}
		if assignment.HasConflict(intervals, req.WorkerID, newDate, newStart, newEnd, source.ID) {
			return assignment.ErrScheduleConflict
		}

		target, err := s.ShiftRepository.FindEquivalent(ctx, source.SiteID, newDate, newStart, newEnd, source.Kind)
		if err != nil {
			if !errors.Is(err, shift.ErrShiftNotFound) {
				return err
			}
			target, err = s.ShiftRepository.Create(ctx, shift.Shift{
				Date:      newDate,
				StartTime: newStart,
				EndTime:   newEnd,
				SiteID:    source.SiteID,
				CreatedBy: req.ActorID,
				Kind:      source.Kind,
				Notes:     source.Notes,
			})
			if err != nil {
				return err
			}
		}

		if _, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
			WorkerID:   req.WorkerID,
			ShiftID:    target.ID,
			AssignedBy: req.ActorID,
			Status:     assignment.StatusScheduled,
		}); err != nil {
			return err
		}

		if err := s.AssignmentRepository.DeleteByWorkerAndShift(ctx, req.WorkerID, source.ID); err != nil {
			return err
		}

		resp = shift.MoveShiftResponse{
			OldShiftID: source.ID,
			NewShift:   toShiftResponse(target),
		}
		return nil
	})
	if err != nil {
		return shift.MoveShiftResponse{}, err
	}

	s.sink.Notify(ctx, notification.Event{
		WorkerID:   req.WorkerID,
		ShiftID:    resp.NewShift.ID,
		Kind:       notification.EventShiftMoved,
		OccurredAt: time.Now().UTC(),
	})

	return resp, nil
}

// UpdateShiftTimes implements shift.ShiftService. The new interval must pass
// the conflict check for every non-cancelled assigned worker before anything
// is written.
func (s *ShiftServiceImpl) UpdateShiftTimes(ctx context.Context, req shift.UpdateShiftTimesRequest) (shift.ShiftResponse, error) {
	var resp shift.ShiftResponse

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.ShiftRepository.GetByID(ctx, req.ShiftID)
		if err != nil {
			return err
		}

		_, start, end, err := parseInterval(timeutil.FormatDate(existing.Date), req.StartTime, req.EndTime)
		if err != nil {
			return err
		}

		assignments, err := s.AssignmentRepository.ListByShift(ctx, existing.ID)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			if a.Status == assignment.StatusCancelled {
				continue
			}
			intervals, err := s.AssignmentRepository.ListIntervalsByWorkerAndDate(ctx, a.WorkerID, existing.Date)
			if err != nil {
				return err
			}
			if assignment.HasConflict(intervals, a.WorkerID, existing.Date, start, end, existing.ID) {
				return assignment.ErrScheduleConflict
			}
		}

		if err := s.ShiftRepository.UpdateTimes(ctx, existing.ID, start, end, req.Notes); err != nil {
			return err
		}

		existing.StartTime = start
		existing.EndTime = end
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		resp = toShiftResponse(existing)
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return resp, nil
}

// DeleteShift implements shift.ShiftService. Assignments cascade in the same
// transaction so no orphaned assignment survives a deleted shift.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, shiftID string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.ShiftRepository.GetByID(ctx, shiftID); err != nil {
			return err
		}
		if err := s.AssignmentRepository.DeleteByShift(ctx, shiftID); err != nil {
			return err
		}
		return s.ShiftRepository.Delete(ctx, shiftID)
	})
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, shiftID string) (shift.ShiftResponse, []shift.AssignmentResult, error) {
	found, err := s.ShiftRepository.GetByID(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, nil, err
	}

	assignments, err := s.AssignmentRepository.ListByShift(ctx, shiftID)
	if err != nil {
		return shift.ShiftResponse{}, nil, err
	}

	results := make([]shift.AssignmentResult, 0, len(assignments))
	for _, a := range assignments {
		results = append(results, shift.AssignmentResult{
			AssignmentID: a.ID,
			WorkerID:     a.WorkerID,
			Status:       a.Status,
		})
	}

	return toShiftResponse(found), results, nil
}

// ListBySite implements shift.ShiftService.
func (s *ShiftServiceImpl) ListBySite(ctx context.Context, siteID, from, to string) ([]shift.ShiftResponse, error) {
	fromDate, err := timeutil.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from date: %w", err)
	}
	toDate, err := timeutil.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to date: %w", err)
	}

	if _, err := s.siteDirectory.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	shifts, err := s.ShiftRepository.ListBySiteAndDateRange(ctx, siteID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return responses, nil
}
