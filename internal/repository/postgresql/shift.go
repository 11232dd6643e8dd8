package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearshift/workforce-backend-go/internal/domain/shift"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `id, date, start_time, end_time, site_id, created_by, kind, notes, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.SiteID,
		&s.CreatedBy, &s.Kind, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	s.ID = uuid.New().String()

	query := `
		INSERT INTO shifts (id, date, start_time, end_time, site_id, created_by, kind, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Date, s.StartTime, s.EndTime, s.SiteID, s.CreatedBy, s.Kind, s.Notes,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// FindEquivalent implements shift.ShiftRepository.
func (r *shiftRepository) FindEquivalent(ctx context.Context, siteID string, date, start, end time.Time, kind shift.Kind) (shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE site_id = $1 AND date = $2 AND start_time = $3 AND end_time = $4 AND kind = $5
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query, siteID, date, start, end, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to find equivalent shift: %w", err)
	}

	return s, nil
}

// UpdateTimes implements shift.ShiftRepository.
func (r *shiftRepository) UpdateTimes(ctx context.Context, id string, start, end time.Time, notes *string) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = $2, end_time = $3, notes = COALESCE($4, notes), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, start, end, notes)
	if err != nil {
		return fmt.Errorf("failed to update shift times: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListBySiteAndDateRange implements shift.ShiftRepository.
func (r *shiftRepository) ListBySiteAndDateRange(ctx context.Context, siteID string, from, to time.Time) ([]shift.Shift, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE site_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}
