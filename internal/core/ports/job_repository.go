// Package ports defines the persistence and gateway contracts between the
// application core and infrastructure adapters, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates, including
// their tasks and the append-only status history.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate, including task
	// additions and removals.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier, scoped to the
	// tenant. Returns errs.ObjectNotFoundError when no such job exists.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*job.Job, error)

	// Delete permanently removes a job, its tasks and its status history.
	// Callers must verify the job is unreferenced before deleting. Returns
	// errs.ObjectNotFoundError when no such job exists.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error

	// GetMany retrieves several jobs by id in a single round trip. Ids that do
	// not exist within the tenant are silently absent from the result.
	GetMany(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error)

	// GetAllUnscheduled retrieves the tenant's jobs in Planned status, the
	// input set of the schedule optimizer.
	GetAllUnscheduled(ctx context.Context, tenantID kernel.UUID) ([]*job.Job, error)

	// NextSequence allocates the next job-number sequence value for the tenant
	// and year. Allocation must be transaction-safe: two concurrent callers
	// never observe the same value.
	NextSequence(ctx context.Context, tenantID kernel.UUID, year int) (int, error)

	// AddStatusLog appends a status transition record to the job's history.
	AddStatusLog(ctx context.Context, logRow *job.StatusLog) error
}
