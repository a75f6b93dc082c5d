package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var ErrFindScheduleConflictsQueryIsNotConstructed = errors.New(
	"FindScheduleConflictsQuery must be created via NewFindScheduleConflictsQuery constructor",
)

// FindScheduleConflictsQuery is the dry-run conflict probe: it finds the
// occupying events that would collide with a proposed crew booking, without
// creating anything.
type FindScheduleConflictsQuery struct {
	tenantID kernel.UUID
	crewIDs  []kernel.UUID
	window   kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewFindScheduleConflictsQuery creates a conflict probe for the crew set in
// the window [from, to).
func NewFindScheduleConflictsQuery(
	tenantID kernel.UUID,
	crewIDs []kernel.UUID,
	from, to time.Time,
) (FindScheduleConflictsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return FindScheduleConflictsQuery{}, err
	}
	if len(crewIDs) == 0 {
		return FindScheduleConflictsQuery{}, errs.NewValueIsRequiredError("crewMemberIds")
	}
	for _, id := range crewIDs {
		if err := id.Validate(); err != nil {
			return FindScheduleConflictsQuery{}, err
		}
	}
	window, err := kernel.NewTimeWindow(from, to)
	if err != nil {
		return FindScheduleConflictsQuery{}, err
	}
	return FindScheduleConflictsQuery{
		tenantID: tenantID,
		crewIDs:  crewIDs,
		window:   window,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindScheduleConflictsQuery) Validate() error {
	return q.guard.Validate(ErrFindScheduleConflictsQueryIsNotConstructed)
}

func (q FindScheduleConflictsQuery) TenantID() kernel.UUID    { return q.tenantID }
func (q FindScheduleConflictsQuery) CrewIDs() []kernel.UUID   { return q.crewIDs }
func (q FindScheduleConflictsQuery) Window() kernel.TimeWindow { return q.window }

// FindScheduleConflictsQueryResponse is one event competing for the probed
// crew members.
type FindScheduleConflictsQueryResponse struct {
	ID            kernel.UUID
	JobID         kernel.UUID
	Status        string
	Start         time.Time
	End           time.Time
	CrewMemberIDs []kernel.UUID
}
