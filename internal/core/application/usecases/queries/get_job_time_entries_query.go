package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetJobTimeEntriesQueryIsNotConstructed = errors.New(
	"GetJobTimeEntriesQuery must be created via NewGetJobTimeEntriesQuery constructor",
)

// GetJobTimeEntriesQuery retrieves the time logged against a job, the raw
// material for invoicing and estimate calibration.
type GetJobTimeEntriesQuery struct {
	tenantID kernel.UUID
	jobID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobTimeEntriesQuery creates a query for a job's time entries.
func NewGetJobTimeEntriesQuery(tenantID, jobID kernel.UUID) (GetJobTimeEntriesQuery, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return GetJobTimeEntriesQuery{}, err
	}
	return GetJobTimeEntriesQuery{
		tenantID: tenantID,
		jobID:    jobID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobTimeEntriesQuery) Validate() error {
	return q.guard.Validate(ErrGetJobTimeEntriesQueryIsNotConstructed)
}

func (q GetJobTimeEntriesQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetJobTimeEntriesQuery) JobID() kernel.UUID    { return q.jobID }

// GetJobTimeEntriesQueryResponse is one logged work stretch with the crew
// member's name resolved for display.
type GetJobTimeEntriesQueryResponse struct {
	ID             kernel.UUID
	CrewMemberID   kernel.UUID
	CrewMemberName string
	Start          time.Time
	End            time.Time
	Note           string
}
