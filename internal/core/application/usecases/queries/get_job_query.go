package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single job with its task list.
type GetJobQuery struct {
	tenantID kernel.UUID
	jobID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for one job.
func NewGetJobQuery(tenantID, jobID kernel.UUID) (GetJobQuery, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return GetJobQuery{}, err
	}
	return GetJobQuery{
		tenantID: tenantID,
		jobID:    jobID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetJobQuery) JobID() kernel.UUID    { return q.jobID }

// GetJobTaskResponse is one task row within a job detail response.
type GetJobTaskResponse struct {
	ID                kernel.UUID
	Title             string
	Status            string
	EstimatedDuration time.Duration
	ActualDuration    time.Duration
	SortOrder         int
}

// GetJobQueryResponse is the full job detail, including tasks in sort order.
type GetJobQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	SourceQuoteID     *kernel.UUID
	Number            string
	Title             string
	Status            string
	Priority          int
	EstimatedDuration time.Duration
	ScheduledStart    *time.Time
	ScheduledEnd      *time.Time
	RequiredSkills    []string
	RequiredEquipment []string
	CreatedBy         string
	CreatedAt         time.Time
	Tasks             []GetJobTaskResponse
}
