package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clearshift/workforce-backend-go/internal/domain/site"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type siteDirectory struct {
	db *database.DB
}

func NewSiteDirectory(db *database.DB) site.SiteDirectory {
	return &siteDirectory{db: db}
}

// GetByID implements site.SiteDirectory.
func (r *siteDirectory) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_name, address, created_at, updated_at
		FROM sites
		WHERE id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.BusinessName, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}
