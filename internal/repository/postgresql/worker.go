package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearshift/workforce-backend-go/internal/domain/worker"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerDirectory struct {
	db *database.DB
}

func NewWorkerDirectory(db *database.DB) worker.WorkerDirectory {
	return &workerDirectory{db: db}
}

// GetByID implements worker.WorkerDirectory.
func (r *workerDirectory) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, code, position, active, created_at, updated_at
		FROM workers
		WHERE id = $1 AND active
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.Code, &w.Position, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// AuthorizedForSite implements worker.WorkerDirectory.
func (r *workerDirectory) AuthorizedForSite(ctx context.Context, workerID, siteID string) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM worker_sites WHERE worker_id = $1 AND site_id = $2
		)
	`

	var ok bool
	if err := q.QueryRow(ctx, query, workerID, siteID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check site authorization: %w", err)
	}

	return ok, nil
}
