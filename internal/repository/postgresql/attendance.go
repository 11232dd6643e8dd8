package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearshift/workforce-backend-go/internal/domain/attendance"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, worker_id, shift_id, clock_in_time, clock_out_time, hours,
	method, status, notes, manual_override, approved_by, correction_note, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.WorkerID, &rec.ShiftID, &rec.ClockInTime, &rec.ClockOutTime, &rec.Hours,
		&rec.Method, &rec.Status, &rec.Notes, &rec.ManualOverride, &rec.ApprovedBy,
		&rec.CorrectionNote, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository. The partial unique index
// on (worker_id, shift_id) WHERE clock_out_time IS NULL is the serialization
// point that rejects the loser of two concurrent clock-ins.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	rec.ID = uuid.New().String()

	query := `
		INSERT INTO attendance_records (
			id, worker_id, shift_id, clock_in_time, clock_out_time, hours,
			method, status, notes, manual_override, approved_by, correction_note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.WorkerID, rec.ShiftID, rec.ClockInTime, rec.ClockOutTime, rec.Hours,
		rec.Method, rec.Status, rec.Notes, rec.ManualOverride, rec.ApprovedBy, rec.CorrectionNote,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "uq_attendance_open_record") {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetOpenByWorkerAndShift implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByWorkerAndShift(ctx context.Context, workerID, shiftID string) (attendance.AttendanceRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE worker_id = $1 AND shift_id = $2 AND clock_out_time IS NULL
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, workerID, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrNoOpenRecord
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return rec, nil
}

// GetByWorkerAndShift implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByWorkerAndShift(ctx context.Context, workerID, shiftID string) (attendance.AttendanceRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE worker_id = $1 AND shift_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, workerID, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.AttendanceRecord) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in_time = $2, clock_out_time = $3, hours = $4, method = $5, status = $6,
			notes = $7, manual_override = $8, approved_by = $9, correction_note = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.ClockInTime, rec.ClockOutTime, rec.Hours, rec.Method, rec.Status,
		rec.Notes, rec.ManualOverride, rec.ApprovedBy, rec.CorrectionNote,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceRecord, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.WorkerID != nil {
		query += fmt.Sprintf(" AND worker_id = $%d", idx)
		args = append(args, *filter.WorkerID)
		idx++
	}
	if filter.ShiftID != nil {
		query += fmt.Sprintf(" AND shift_id = $%d", idx)
		args = append(args, *filter.ShiftID)
		idx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND clock_in_time >= $%d", idx)
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND clock_in_time <= $%d", idx)
		args = append(args, *filter.To)
		idx++
	}

	query += " ORDER BY clock_in_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
