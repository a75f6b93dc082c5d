package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListJobDependenciesQueryIsNotConstructed = errors.New(
	"ListJobDependenciesQuery must be created via NewListJobDependenciesQuery constructor",
)

// ListJobDependenciesQuery retrieves the dependency edges touching a job, in
// either direction.
type ListJobDependenciesQuery struct {
	tenantID kernel.UUID
	jobID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewListJobDependenciesQuery creates a query for a job's dependency edges.
func NewListJobDependenciesQuery(tenantID, jobID kernel.UUID) (ListJobDependenciesQuery, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return ListJobDependenciesQuery{}, err
	}
	return ListJobDependenciesQuery{
		tenantID: tenantID,
		jobID:    jobID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListJobDependenciesQuery) Validate() error {
	return q.guard.Validate(ErrListJobDependenciesQueryIsNotConstructed)
}

func (q ListJobDependenciesQuery) TenantID() kernel.UUID { return q.tenantID }
func (q ListJobDependenciesQuery) JobID() kernel.UUID    { return q.jobID }

// ListJobDependenciesQueryResponse is one edge joined with the numbers of both
// jobs, so clients can render the edge without extra lookups.
type ListJobDependenciesQueryResponse struct {
	ID                 kernel.UUID
	DependentID        kernel.UUID
	DependentNumber    string
	PrerequisiteID     kernel.UUID
	PrerequisiteNumber string
}
