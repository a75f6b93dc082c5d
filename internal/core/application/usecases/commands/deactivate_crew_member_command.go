package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeactivateCrewMemberCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeactivateCrewMemberCommandIsNotConstructed = errors.New(
	"DeactivateCrewMemberCommand must be created via NewDeactivateCrewMemberCommand constructor",
)

// DeactivateCrewMemberCommand represents the soft delete of a crew member.
// The member disappears from the scheduling candidate set but keeps their
// history and existing event assignments.
type DeactivateCrewMemberCommand struct { //nolint:recvcheck //using for validation
	crewMemberID kernel.UUID
	tenantID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateCrewMemberCommand creates a command to deactivate a crew member.
func NewDeactivateCrewMemberCommand(crewMemberID, tenantID kernel.UUID) (DeactivateCrewMemberCommand, error) {
	cmd := DeactivateCrewMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(crewMemberID.Validate(), tenantID.Validate()); err != nil {
		return DeactivateCrewMemberCommand{}, err
	}

	cmd.crewMemberID = crewMemberID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateCrewMemberCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCrewMemberCommandIsNotConstructed)
}

func (c DeactivateCrewMemberCommand) CrewMemberID() kernel.UUID { return c.crewMemberID }
func (c DeactivateCrewMemberCommand) TenantID() kernel.UUID     { return c.tenantID }
