package shift

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
	"github.com/clearshift/workforce-backend-go/internal/domain/notification"
	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/domain/site"
	"github.com/clearshift/workforce-backend-go/internal/domain/worker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeShiftRepo struct {
	createFn         func(ctx context.Context, s shift.Shift) (shift.Shift, error)
	getByIDFn        func(ctx context.Context, id string) (shift.Shift, error)
	findEquivalentFn func(ctx context.Context, siteID string, date, start, end time.Time, kind shift.Kind) (shift.Shift, error)
	updateTimesFn    func(ctx context.Context, id string, start, end time.Time, notes *string) error
	deleteFn         func(ctx context.Context, id string) error
	listBySiteFn     func(ctx context.Context, siteID string, from, to time.Time) ([]shift.Shift, error)
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return f.createFn(ctx, s)
}
func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeShiftRepo) FindEquivalent(ctx context.Context, siteID string, date, start, end time.Time, kind shift.Kind) (shift.Shift, error) {
	return f.findEquivalentFn(ctx, siteID, date, start, end, kind)
}
func (f *fakeShiftRepo) UpdateTimes(ctx context.Context, id string, start, end time.Time, notes *string) error {
	return f.updateTimesFn(ctx, id, start, end, notes)
}
func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeShiftRepo) ListBySiteAndDateRange(ctx context.Context, siteID string, from, to time.Time) ([]shift.Shift, error) {
	return f.listBySiteFn(ctx, siteID, from, to)
}

type fakeAssignmentRepo struct {
	createFn                 func(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error)
	getByWorkerAndShiftFn    func(ctx context.Context, workerID, shiftID string) (assignment.Assignment, error)
	listIntervalsFn          func(ctx context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error)
	updateStatusFn           func(ctx context.Context, id string, status assignment.Status) error
	deleteByWorkerAndShiftFn func(ctx context.Context, workerID, shiftID string) error
	deleteByShiftFn          func(ctx context.Context, shiftID string) error
	listByShiftFn            func(ctx context.Context, shiftID string) ([]assignment.Assignment, error)
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	return f.createFn(ctx, a)
}
func (f *fakeAssignmentRepo) GetByWorkerAndShift(ctx context.Context, workerID, shiftID string) (assignment.Assignment, error) {
	return f.getByWorkerAndShiftFn(ctx, workerID, shiftID)
}
func (f *fakeAssignmentRepo) ListIntervalsByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
	return f.listIntervalsFn(ctx, workerID, date)
}
func (f *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id string, status assignment.Status) error {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeAssignmentRepo) DeleteByWorkerAndShift(ctx context.Context, workerID, shiftID string) error {
	return f.deleteByWorkerAndShiftFn(ctx, workerID, shiftID)
}
func (f *fakeAssignmentRepo) DeleteByShift(ctx context.Context, shiftID string) error {
	return f.deleteByShiftFn(ctx, shiftID)
}
func (f *fakeAssignmentRepo) ListByShift(ctx context.Context, shiftID string) ([]assignment.Assignment, error) {
	return f.listByShiftFn(ctx, shiftID)
}

type fakeWorkerDirectory struct {
	getByIDFn           func(ctx context.Context, id string) (worker.Worker, error)
	authorizedForSiteFn func(ctx context.Context, workerID, siteID string) (bool, error)
}

func (f *fakeWorkerDirectory) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeWorkerDirectory) AuthorizedForSite(ctx context.Context, workerID, siteID string) (bool, error) {
	return f.authorizedForSiteFn(ctx, workerID, siteID)
}

type fakeSiteDirectory struct {
	getByIDFn func(ctx context.Context, id string) (site.Site, error)
}

func (f *fakeSiteDirectory) GetByID(ctx context.Context, id string) (site.Site, error) {
	return f.getByIDFn(ctx, id)
}

type recordingSink struct {
	events []notification.Event
}

func (s *recordingSink) Notify(_ context.Context, event notification.Event) {
	s.events = append(s.events, event)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func happyWorkerDirectory() *fakeWorkerDirectory {
	return &fakeWorkerDirectory{
		getByIDFn: func(_ context.Context, id string) (worker.Worker, error) {
			return worker.Worker{ID: id, Active: true}, nil
		},
		authorizedForSiteFn: func(_ context.Context, _, _ string) (bool, error) {
			return true, nil
		},
	}
}

func happySiteDirectory() *fakeSiteDirectory {
	return &fakeSiteDirectory{
		getByIDFn: func(_ context.Context, id string) (site.Site, error) {
			return site.Site{ID: id}, nil
		},
	}
}

func countingShiftRepo() *fakeShiftRepo {
	n := 0
	return &fakeShiftRepo{
		createFn: func(_ context.Context, s shift.Shift) (shift.Shift, error) {
			n++
			s.ID = fmt.Sprintf("shift-%d", n)
			return s, nil
		},
	}
}

func TestCreateShiftWithWorkers_PartialSuccess(t *testing.T) {
	siteID := uuid.New().String()
	okWorker := uuid.New().String()
	busyWorker := uuid.New().String()
	goneWorker := uuid.New().String()

	assignmentRepo := &fakeAssignmentRepo{
		createFn: func(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
			a.ID = uuid.New().String()
			return a, nil
		},
		listIntervalsFn: func(_ context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
			if workerID != busyWorker {
				return nil, nil
			}
			return []assignment.ScheduledInterval{{
				ShiftID:   "other-shift",
				WorkerID:  busyWorker,
				Date:      date,
				StartTime: date.Add(8 * time.Hour),
				EndTime:   date.Add(16 * time.Hour),
			}}, nil
		},
	}
	workers := happyWorkerDirectory()
	workers.getByIDFn = func(_ context.Context, id string) (worker.Worker, error) {
		if id == goneWorker {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{ID: id, Active: true}, nil
	}

	sink := &recordingSink{}
	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, workers, happySiteDirectory(), sink, newTestLogger())

	resp, err := svc.CreateShiftWithWorkers(context.Background(), shift.CreateShiftRequest{
		SiteID:    siteID,
		Date:      "2025-03-10",
		StartTime: "09:00",
		EndTime:   "17:00",
		Kind:      shift.KindRegular,
		WorkerIDs: []string{okWorker, busyWorker, goneWorker},
		ActorID:   uuid.New().String(),
	})

	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, okWorker, resp.Assignments[0].WorkerID)
	assert.Equal(t, assignment.StatusScheduled, resp.Assignments[0].Status)
	assert.Len(t, resp.Warnings, 2)

	require.Len(t, sink.events, 1)
	assert.Equal(t, notification.EventShiftAssigned, sink.events[0].Kind)
	assert.Equal(t, okWorker, sink.events[0].WorkerID)
}

func TestCreateShiftWithWorkers_AllFail(t *testing.T) {
	assignmentRepo := &fakeAssignmentRepo{
		listIntervalsFn: func(_ context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
			return []assignment.ScheduledInterval{{
				ShiftID:   "other-shift",
				WorkerID:  workerID,
				Date:      date,
				StartTime: date.Add(9 * time.Hour),
				EndTime:   date.Add(17 * time.Hour),
			}}, nil
		},
	}

	sink := &recordingSink{}
	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), sink, newTestLogger())

	_, err := svc.CreateShiftWithWorkers(context.Background(), shift.CreateShiftRequest{
		SiteID:    uuid.New().String(),
		Date:      "2025-03-10",
		StartTime: "09:00",
		EndTime:   "17:00",
		Kind:      shift.KindRegular,
		WorkerIDs: []string{uuid.New().String()},
		ActorID:   uuid.New().String(),
	})

	assert.ErrorIs(t, err, shift.ErrAllAssignmentsFailed)
	assert.Empty(t, sink.events)
}

func TestCreateShiftWithWorkers_InvalidTimes(t *testing.T) {
	svc := NewShiftService(passTx{}, countingShiftRepo(), &fakeAssignmentRepo{}, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	_, err := svc.CreateShiftWithWorkers(context.Background(), shift.CreateShiftRequest{
		SiteID:    uuid.New().String(),
		Date:      "2025-03-10",
		StartTime: "17:00",
		EndTime:   "09:00",
		Kind:      shift.KindRegular,
		WorkerIDs: []string{uuid.New().String()},
		ActorID:   uuid.New().String(),
	})

	assert.ErrorIs(t, err, shift.ErrInvalidShiftTimes)
}

func TestCreateShiftWithWorkers_DuplicateWorkerIDsCollapse(t *testing.T) {
	workerID := uuid.New().String()
	var created int
	assignmentRepo := &fakeAssignmentRepo{
		createFn: func(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
			created++
			a.ID = uuid.New().String()
			return a, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, _ time.Time) ([]assignment.ScheduledInterval, error) {
			return nil, nil
		},
	}

	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	resp, err := svc.CreateShiftWithWorkers(context.Background(), shift.CreateShiftRequest{
		SiteID:    uuid.New().String(),
		Date:      "2025-03-10",
		StartTime: "09:00",
		EndTime:   "17:00",
		Kind:      shift.KindRegular,
		WorkerIDs: []string{workerID, workerID, workerID},
		ActorID:   uuid.New().String(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Len(t, resp.Assignments, 1)
	assert.Empty(t, resp.Warnings)
}

func TestCreateShiftWithWorkers_BackToBackNotConflict(t *testing.T) {
	workerID := uuid.New().String()
	assignmentRepo := &fakeAssignmentRepo{
		createFn: func(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
			a.ID = uuid.New().String()
			return a, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, date time.Time) ([]assignment.ScheduledInterval, error) {
			// Existing 09:00-17:00 shift; the new one starts exactly at 17:00.
			return []assignment.ScheduledInterval{{
				ShiftID:   "morning-shift",
				WorkerID:  workerID,
				Date:      date,
				StartTime: date.Add(9 * time.Hour),
				EndTime:   date.Add(17 * time.Hour),
			}}, nil
		},
	}

	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	resp, err := svc.CreateShiftWithWorkers(context.Background(), shift.CreateShiftRequest{
		SiteID:    uuid.New().String(),
		Date:      "2025-03-10",
		StartTime: "17:00",
		EndTime:   "21:00",
		Kind:      shift.KindRegular,
		WorkerIDs: []string{workerID},
		ActorID:   uuid.New().String(),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Assignments, 1)
	assert.Empty(t, resp.Warnings)
}

func TestCreateRecurringShifts(t *testing.T) {
	busyDate := "2025-03-10" // a Monday
	assignmentRepo := &fakeAssignmentRepo{
		createFn: func(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
			a.ID = uuid.New().String()
			return a, nil
		},
		listIntervalsFn: func(_ context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
			if date.Format("2006-01-02") != busyDate {
				return nil, nil
			}
			return []assignment.ScheduledInterval{{
				ShiftID:   "existing",
				WorkerID:  workerID,
				Date:      date,
				StartTime: date.Add(9 * time.Hour),
				EndTime:   date.Add(17 * time.Hour),
			}}, nil
		},
	}

	sink := &recordingSink{}
	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), sink, newTestLogger())

	// Mondays and Wednesdays over two weeks: Mar 10, 12, 17, 19. The first
	// Monday conflicts away entirely and is skipped with a warning.
	resp, err := svc.CreateRecurringShifts(context.Background(), shift.CreateRecurringRequest{
		SiteID:     uuid.New().String(),
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-21",
		DaysOfWeek: []int{1, 3},
		StartTime:  "09:00",
		EndTime:    "17:00",
		Kind:       shift.KindRegular,
		WorkerIDs:  []string{uuid.New().String()},
		ActorID:    uuid.New().String(),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Created, 3)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], busyDate)
	assert.Len(t, sink.events, 3)
}

func TestCreateRecurringShifts_NothingCreated(t *testing.T) {
	assignmentRepo := &fakeAssignmentRepo{
		listIntervalsFn: func(_ context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
			return []assignment.ScheduledInterval{{
				ShiftID:   "existing",
				WorkerID:  workerID,
				Date:      date,
				StartTime: date.Add(1 * time.Hour),
				EndTime:   date.Add(23 * time.Hour),
			}}, nil
		},
	}

	svc := NewShiftService(passTx{}, countingShiftRepo(), assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	_, err := svc.CreateRecurringShifts(context.Background(), shift.CreateRecurringRequest{
		SiteID:     uuid.New().String(),
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-14",
		DaysOfWeek: []int{1, 2, 3, 4, 5},
		StartTime:  "09:00",
		EndTime:    "17:00",
		Kind:       shift.KindRegular,
		WorkerIDs:  []string{uuid.New().String()},
		ActorID:    uuid.New().String(),
	})

	assert.ErrorIs(t, err, shift.ErrNoShiftsCreated)
}

func TestMoveShiftToDate_CreatesTargetAndRemovesOldAssignment(t *testing.T) {
	workerID := uuid.New().String()
	sourceDate, _ := time.Parse("2006-01-02", "2025-03-10")

	source := shift.Shift{
		ID:        "source-shift",
		Date:      sourceDate,
		StartTime: sourceDate.Add(9 * time.Hour),
		EndTime:   sourceDate.Add(17 * time.Hour),
		SiteID:    uuid.New().String(),
		Kind:      shift.KindRegular,
	}

	var deletedOld bool
	shiftRepo := &fakeShiftRepo{
		getByIDFn: func(_ context.Context, id string) (shift.Shift, error) {
			require.Equal(t, source.ID, id)
			return source, nil
		},
		findEquivalentFn: func(_ context.Context, _ string, _, _, _ time.Time, _ shift.Kind) (shift.Shift, error) {
			return shift.Shift{}, shift.ErrShiftNotFound
		},
		createFn: func(_ context.Context, s shift.Shift) (shift.Shift, error) {
			s.ID = "target-shift"
			return s, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		getByWorkerAndShiftFn: func(_ context.Context, _, _ string) (assignment.Assignment, error) {
			return assignment.Assignment{ID: uuid.New().String(), WorkerID: workerID, ShiftID: source.ID, Status: assignment.StatusScheduled}, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, _ time.Time) ([]assignment.ScheduledInterval, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
			assert.Equal(t, "target-shift", a.ShiftID)
			assert.Equal(t, assignment.StatusScheduled, a.Status)
			a.ID = uuid.New().String()
			return a, nil
		},
		deleteByWorkerAndShiftFn: func(_ context.Context, w, s string) error {
			assert.Equal(t, workerID, w)
			assert.Equal(t, source.ID, s)
			deletedOld = true
			return nil
		},
	}

	sink := &recordingSink{}
	svc := NewShiftService(passTx{}, shiftRepo, assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), sink, newTestLogger())

	resp, err := svc.MoveShiftToDate(context.Background(), shift.MoveShiftRequest{
		ShiftID:  source.ID,
		NewDate:  "2025-03-12",
		WorkerID: workerID,
		ActorID:  uuid.New().String(),
	})

	require.NoError(t, err)
	assert.True(t, deletedOld)
	assert.Equal(t, source.ID, resp.OldShiftID)
	assert.Equal(t, "target-shift", resp.NewShift.ID)
	assert.Equal(t, "2025-03-12", resp.NewShift.Date)
	assert.Equal(t, "09:00", resp.NewShift.StartTime)

	require.Len(t, sink.events, 1)
	assert.Equal(t, notification.EventShiftMoved, sink.events[0].Kind)
}

func TestMoveShiftToDate_ConflictOnTargetDate(t *testing.T) {
	workerID := uuid.New().String()
	sourceDate, _ := time.Parse("2006-01-02", "2025-03-10")

	source := shift.Shift{
		ID:        "source-shift",
		Date:      sourceDate,
		StartTime: sourceDate.Add(9 * time.Hour),
		EndTime:   sourceDate.Add(17 * time.Hour),
		SiteID:    uuid.New().String(),
		Kind:      shift.KindRegular,
	}

	shiftRepo := &fakeShiftRepo{
		getByIDFn: func(_ context.Context, _ string) (shift.Shift, error) { return source, nil },
	}
	assignmentRepo := &fakeAssignmentRepo{
		getByWorkerAndShiftFn: func(_ context.Context, _, _ string) (assignment.Assignment, error) {
			return assignment.Assignment{ID: uuid.New().String(), Status: assignment.StatusScheduled}, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, date time.Time) ([]assignment.ScheduledInterval, error) {
			return []assignment.ScheduledInterval{{
				ShiftID:   "blocking",
				WorkerID:  workerID,
				Date:      date,
				StartTime: date.Add(10 * time.Hour),
				EndTime:   date.Add(18 * time.Hour),
			}}, nil
		},
	}

	svc := NewShiftService(passTx{}, shiftRepo, assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	_, err := svc.MoveShiftToDate(context.Background(), shift.MoveShiftRequest{
		ShiftID:  source.ID,
		NewDate:  "2025-03-12",
		WorkerID: workerID,
		ActorID:  uuid.New().String(),
	})

	assert.ErrorIs(t, err, assignment.ErrScheduleConflict)
}

func TestUpdateShiftTimes_ConflictRejected(t *testing.T) {
	workerID := uuid.New().String()
	date, _ := time.Parse("2006-01-02", "2025-03-10")

	existing := shift.Shift{
		ID:        "shift-1",
		Date:      date,
		StartTime: date.Add(9 * time.Hour),
		EndTime:   date.Add(17 * time.Hour),
		SiteID:    uuid.New().String(),
		Kind:      shift.KindRegular,
	}

	var updated bool
	shiftRepo := &fakeShiftRepo{
		getByIDFn: func(_ context.Context, _ string) (shift.Shift, error) { return existing, nil },
		updateTimesFn: func(_ context.Context, _ string, _, _ time.Time, _ *string) error {
			updated = true
			return nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		listByShiftFn: func(_ context.Context, _ string) ([]assignment.Assignment, error) {
			return []assignment.Assignment{{ID: "a1", WorkerID: workerID, ShiftID: existing.ID, Status: assignment.StatusScheduled}}, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, _ time.Time) ([]assignment.ScheduledInterval, error) {
			return []assignment.ScheduledInterval{
				{ShiftID: existing.ID, WorkerID: workerID, Date: date, StartTime: existing.StartTime, EndTime: existing.EndTime},
				{ShiftID: "evening", WorkerID: workerID, Date: date, StartTime: date.Add(18 * time.Hour), EndTime: date.Add(22 * time.Hour)},
			}, nil
		},
	}

	svc := NewShiftService(passTx{}, shiftRepo, assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	// Stretching to 19:00 collides with the worker's 18:00 evening shift.
	_, err := svc.UpdateShiftTimes(context.Background(), shift.UpdateShiftTimesRequest{
		ShiftID:   existing.ID,
		StartTime: "09:00",
		EndTime:   "19:00",
	})

	assert.ErrorIs(t, err, assignment.ErrScheduleConflict)
	assert.False(t, updated)
}

func TestUpdateShiftTimes_OwnIntervalExcluded(t *testing.T) {
	workerID := uuid.New().String()
	date, _ := time.Parse("2006-01-02", "2025-03-10")

	existing := shift.Shift{
		ID:        "shift-1",
		Date:      date,
		StartTime: date.Add(9 * time.Hour),
		EndTime:   date.Add(17 * time.Hour),
		SiteID:    uuid.New().String(),
		Kind:      shift.KindRegular,
	}

	shiftRepo := &fakeShiftRepo{
		getByIDFn:     func(_ context.Context, _ string) (shift.Shift, error) { return existing, nil },
		updateTimesFn: func(_ context.Context, _ string, _, _ time.Time, _ *string) error { return nil },
	}
	assignmentRepo := &fakeAssignmentRepo{
		listByShiftFn: func(_ context.Context, _ string) ([]assignment.Assignment, error) {
			return []assignment.Assignment{{ID: "a1", WorkerID: workerID, ShiftID: existing.ID, Status: assignment.StatusScheduled}}, nil
		},
		listIntervalsFn: func(_ context.Context, _ string, _ time.Time) ([]assignment.ScheduledInterval, error) {
			return []assignment.ScheduledInterval{
				{ShiftID: existing.ID, WorkerID: workerID, Date: date, StartTime: existing.StartTime, EndTime: existing.EndTime},
			}, nil
		},
	}

	svc := NewShiftService(passTx{}, shiftRepo, assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	resp, err := svc.UpdateShiftTimes(context.Background(), shift.UpdateShiftTimesRequest{
		ShiftID:   existing.ID,
		StartTime: "10:00",
		EndTime:   "18:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
}

func TestDeleteShift_CascadesAssignments(t *testing.T) {
	var deletedAssignments, deletedShift bool

	shiftRepo := &fakeShiftRepo{
		getByIDFn: func(_ context.Context, id string) (shift.Shift, error) {
			return shift.Shift{ID: id}, nil
		},
		deleteFn: func(_ context.Context, _ string) error {
			require.True(t, deletedAssignments)
			deletedShift = true
			return nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		deleteByShiftFn: func(_ context.Context, _ string) error {
			deletedAssignments = true
			return nil
		},
	}

	svc := NewShiftService(passTx{}, shiftRepo, assignmentRepo, happyWorkerDirectory(), happySiteDirectory(), &recordingSink{}, newTestLogger())

	err := svc.DeleteShift(context.Background(), "shift-1")

	require.NoError(t, err)
	assert.True(t, deletedShift)
}
