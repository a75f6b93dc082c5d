// Package queries contains read-only operations implementing the query side of
// the CQRS architecture. Handlers bypass the domain model and read projection
// data with raw SQL for performance.
package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via NewListJobsQuery constructor",
)

// ListJobsQuery retrieves the tenant's jobs, optionally narrowed to a single
// lifecycle status. Cancelled jobs are regular rows here: soft-deleted work
// stays visible to reporting.
//
// Example:
//
//	status := job.StatusScheduled
//	query, err := NewListJobsQuery(tenantID, &status)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	jobs, err := NewListJobsQueryHandler(db).Handle(ctx, query)
type ListJobsQuery struct {
	tenantID kernel.UUID
	status   *job.Status

	guard guard.ConstructorGuard
}

// NewListJobsQuery creates a query for the tenant's jobs. A nil status means
// no status filter.
func NewListJobsQuery(tenantID kernel.UUID, status *job.Status) (ListJobsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListJobsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListJobsQuery{}, err
		}
	}
	return ListJobsQuery{
		tenantID: tenantID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

func (q ListJobsQuery) TenantID() kernel.UUID { return q.tenantID }
func (q ListJobsQuery) Status() *job.Status   { return q.status }

// ListJobsQueryResponse is the job list read model.
type ListJobsQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	Number         string
	Title          string
	Status         string
	Priority       int
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	CreatedAt      time.Time
}
