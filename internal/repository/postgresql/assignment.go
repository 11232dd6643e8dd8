package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/assignment"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := database.GetQuerier(ctx, r.db)

	a.ID = uuid.New().String()

	query := `
		INSERT INTO assignments (id, worker_id, shift_id, assigned_by, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.WorkerID, a.ShiftID, a.AssignedBy, a.Status, a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "uq_assignments_worker_shift") {
			return assignment.Assignment{}, assignment.ErrDuplicateAssignment
		}
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByWorkerAndShift implements assignment.AssignmentRepository.
func (r *assignmentRepository) GetByWorkerAndShift(ctx context.Context, workerID, shiftID string) (assignment.Assignment, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, shift_id, assigned_by, status, notes, created_at, updated_at
		FROM assignments
		WHERE worker_id = $1 AND shift_id = $2
	`

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, workerID, shiftID).Scan(
		&a.ID, &a.WorkerID, &a.ShiftID, &a.AssignedBy, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// ListIntervalsByWorkerAndDate implements assignment.AssignmentRepository.
// Cancelled assignments do not block a slot.
func (r *assignmentRepository) ListIntervalsByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]assignment.ScheduledInterval, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, a.worker_id, s.date, s.start_time, s.end_time
		FROM assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.worker_id = $1 AND s.date = $2 AND a.status <> 'cancelled'
	`

	rows, err := q.Query(ctx, query, workerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker intervals: %w", err)
	}
	defer rows.Close()

	var intervals []assignment.ScheduledInterval
	for rows.Next() {
		var iv assignment.ScheduledInterval
		if err := rows.Scan(&iv.ShiftID, &iv.WorkerID, &iv.Date, &iv.StartTime, &iv.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan worker interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worker intervals: %w", err)
	}

	return intervals, nil
}

// UpdateStatus implements assignment.AssignmentRepository.
func (r *assignmentRepository) UpdateStatus(ctx context.Context, id string, status assignment.Status) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE assignments SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// DeleteByWorkerAndShift implements assignment.AssignmentRepository.
func (r *assignmentRepository) DeleteByWorkerAndShift(ctx context.Context, workerID, shiftID string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM assignments WHERE worker_id = $1 AND shift_id = $2`,
		workerID, shiftID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// DeleteByShift implements assignment.AssignmentRepository.
func (r *assignmentRepository) DeleteByShift(ctx context.Context, shiftID string) error {
	q := database.GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM assignments WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("failed to delete shift assignments: %w", err)
	}

	return nil
}

// ListByShift implements assignment.AssignmentRepository.
func (r *assignmentRepository) ListByShift(ctx context.Context, shiftID string) ([]assignment.Assignment, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, shift_id, assigned_by, status, notes, created_at, updated_at
		FROM assignments
		WHERE shift_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.ShiftID, &a.AssignedBy, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}
