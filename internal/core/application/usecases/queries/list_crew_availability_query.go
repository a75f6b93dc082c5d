package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListCrewAvailabilityQueryIsNotConstructed = errors.New(
	"ListCrewAvailabilityQuery must be created via NewListCrewAvailabilityQuery constructor",
)

// ListCrewAvailabilityQuery retrieves the declared availability and blackout
// windows of one crew member.
type ListCrewAvailabilityQuery struct {
	tenantID     kernel.UUID
	crewMemberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCrewAvailabilityQuery creates a query for a crew member's windows.
func NewListCrewAvailabilityQuery(tenantID, crewMemberID kernel.UUID) (ListCrewAvailabilityQuery, error) {
	if err := errors.Join(tenantID.Validate(), crewMemberID.Validate()); err != nil {
		return ListCrewAvailabilityQuery{}, err
	}
	return ListCrewAvailabilityQuery{
		tenantID:     tenantID,
		crewMemberID: crewMemberID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCrewAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrListCrewAvailabilityQueryIsNotConstructed)
}

func (q ListCrewAvailabilityQuery) TenantID() kernel.UUID     { return q.tenantID }
func (q ListCrewAvailabilityQuery) CrewMemberID() kernel.UUID { return q.crewMemberID }

// ListCrewAvailabilityQueryResponse is one declared window.
type ListCrewAvailabilityQueryResponse struct {
	ID    kernel.UUID
	Start time.Time
	End   time.Time
	Kind  string
}
