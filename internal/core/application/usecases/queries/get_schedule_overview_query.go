package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetScheduleOverviewQueryIsNotConstructed = errors.New(
	"GetScheduleOverviewQuery must be created via NewGetScheduleOverviewQuery constructor",
)

// GetScheduleOverviewQuery retrieves every schedule event overlapping a time
// range, the data behind the dispatcher's calendar board.
type GetScheduleOverviewQuery struct {
	tenantID kernel.UUID
	window   kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewGetScheduleOverviewQuery creates a query for the schedule in [from, to).
func NewGetScheduleOverviewQuery(tenantID kernel.UUID, from, to time.Time) (GetScheduleOverviewQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetScheduleOverviewQuery{}, err
	}
	window, err := kernel.NewTimeWindow(from, to)
	if err != nil {
		return GetScheduleOverviewQuery{}, err
	}
	return GetScheduleOverviewQuery{
		tenantID: tenantID,
		window:   window,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetScheduleOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleOverviewQueryIsNotConstructed)
}

func (q GetScheduleOverviewQuery) TenantID() kernel.UUID   { return q.tenantID }
func (q GetScheduleOverviewQuery) Window() kernel.TimeWindow { return q.window }

// GetScheduleOverviewQueryResponse is one schedule event on the board, joined
// with the job it books crew for.
type GetScheduleOverviewQueryResponse struct {
	ID            kernel.UUID
	JobID         kernel.UUID
	JobNumber     string
	JobTitle      string
	Status        string
	Start         time.Time
	End           time.Time
	CrewMemberIDs []kernel.UUID
	Notes         string
}
