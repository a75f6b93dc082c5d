package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListJobEventsQueryIsNotConstructed = errors.New(
	"ListJobEventsQuery must be created via NewListJobEventsQuery constructor",
)

// ListJobEventsQuery retrieves every schedule event attached to a job,
// regardless of status, for the job detail view.
type ListJobEventsQuery struct {
	tenantID kernel.UUID
	jobID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewListJobEventsQuery creates a query for a job's schedule events.
func NewListJobEventsQuery(tenantID, jobID kernel.UUID) (ListJobEventsQuery, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return ListJobEventsQuery{}, err
	}
	return ListJobEventsQuery{
		tenantID: tenantID,
		jobID:    jobID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListJobEventsQuery) Validate() error {
	return q.guard.Validate(ErrListJobEventsQueryIsNotConstructed)
}

func (q ListJobEventsQuery) TenantID() kernel.UUID { return q.tenantID }
func (q ListJobEventsQuery) JobID() kernel.UUID    { return q.jobID }

// ListJobEventsQueryResponse is one schedule event of the job.
type ListJobEventsQueryResponse struct {
	ID            kernel.UUID
	Status        string
	Start         time.Time
	End           time.Time
	CrewMemberIDs []kernel.UUID
	Notes         string
}
