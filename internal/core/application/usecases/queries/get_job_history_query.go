package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetJobHistoryQueryIsNotConstructed = errors.New(
	"GetJobHistoryQuery must be created via NewGetJobHistoryQuery constructor",
)

// GetJobHistoryQuery retrieves the append-only status history of a job, newest
// first. The history answers "who moved this job and why" for audits and
// customer disputes.
type GetJobHistoryQuery struct {
	tenantID kernel.UUID
	jobID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobHistoryQuery creates a query for a job's status history.
func NewGetJobHistoryQuery(tenantID, jobID kernel.UUID) (GetJobHistoryQuery, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return GetJobHistoryQuery{}, err
	}
	return GetJobHistoryQuery{
		tenantID: tenantID,
		jobID:    jobID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetJobHistoryQueryIsNotConstructed)
}

func (q GetJobHistoryQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetJobHistoryQuery) JobID() kernel.UUID    { return q.jobID }

// GetJobHistoryQueryResponse is one status transition record.
type GetJobHistoryQueryResponse struct {
	ID             kernel.UUID
	PreviousStatus string
	NewStatus      string
	Reason         string
	Notes          string
	Actor          string
	OccurredAt     time.Time
}
