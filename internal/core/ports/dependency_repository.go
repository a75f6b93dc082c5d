package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// DependencyRepository defines the persistence contract for job dependency
// edges. The cycle invariant is enforced by the DependencyGraph domain service
// before an edge reaches Add.
type DependencyRepository interface {
	// Add persists a dependency edge.
	Add(ctx context.Context, edge *job.Dependency) error

	// Remove deletes the edge between the two jobs. Returns
	// errs.ObjectNotFoundError when no such edge exists.
	Remove(ctx context.Context, tenantID, dependentID, prerequisiteID kernel.UUID) error

	// GetAllForTenant retrieves every dependency edge of the tenant, the input
	// for building the dependency graph.
	GetAllForTenant(ctx context.Context, tenantID kernel.UUID) ([]*job.Dependency, error)

	// GetAllForJob retrieves the edges touching a job, in either direction.
	GetAllForJob(ctx context.Context, tenantID, jobID kernel.UUID) ([]*job.Dependency, error)
}
