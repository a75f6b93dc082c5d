package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListCrewMembersQueryIsNotConstructed = errors.New(
	"ListCrewMembersQuery must be created via NewListCrewMembersQuery constructor",
)

// ListCrewMembersQuery retrieves the tenant's crew roster. Deactivated members
// are included so dispatchers can reactivate them.
type ListCrewMembersQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCrewMembersQuery creates a query for the tenant's crew members.
func NewListCrewMembersQuery(tenantID kernel.UUID) (ListCrewMembersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListCrewMembersQuery{}, err
	}
	return ListCrewMembersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCrewMembersQuery) Validate() error {
	return q.guard.Validate(ErrListCrewMembersQueryIsNotConstructed)
}

func (q ListCrewMembersQuery) TenantID() kernel.UUID { return q.tenantID }

// ListCrewMembersQueryResponse is the crew roster read model.
type ListCrewMembersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Skills          []string
	MaxHoursPerDay  int
	MaxHoursPerWeek int
	IsActive        bool
}
