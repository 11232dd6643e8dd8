package worker

import (
	"context"
)

// WorkerDirectory is the lookup contract the scheduling engine consumes from
// the worker-management side of the system.
type WorkerDirectory interface {
	// GetByID retrieves an active worker, or ErrWorkerNotFound.
	GetByID(ctx context.Context, id string) (Worker, error)

	// AuthorizedForSite reports whether the worker may be scheduled at a site.
	AuthorizedForSite(ctx context.Context, workerID, siteID string) (bool, error)
}
