package site

import (
	"context"
)

// SiteDirectory is the existence-lookup contract the scheduling engine
// consumes from client management.
type SiteDirectory interface {
	// GetByID retrieves a site, or ErrSiteNotFound.
	GetByID(ctx context.Context, id string) (Site, error)
}
