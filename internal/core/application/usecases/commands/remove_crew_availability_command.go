package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrRemoveCrewAvailabilityCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrRemoveCrewAvailabilityCommandIsNotConstructed = errors.New(
	"RemoveCrewAvailabilityCommand must be created via NewRemoveCrewAvailabilityCommand constructor",
)

// RemoveCrewAvailabilityCommand represents a request to withdraw a previously
// declared availability or blackout window.
type RemoveCrewAvailabilityCommand struct { //nolint:recvcheck //using for validation
	crewMemberID   kernel.UUID
	tenantID       kernel.UUID
	availabilityID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCrewAvailabilityCommand creates a command to remove an availability window.
func NewRemoveCrewAvailabilityCommand(
	crewMemberID, tenantID, availabilityID kernel.UUID,
) (RemoveCrewAvailabilityCommand, error) {
	cmd := RemoveCrewAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		crewMemberID.Validate(),
		tenantID.Validate(),
		availabilityID.Validate(),
	); err != nil {
		return RemoveCrewAvailabilityCommand{}, err
	}

	cmd.crewMemberID = crewMemberID
	cmd.tenantID = tenantID
	cmd.availabilityID = availabilityID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCrewAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCrewAvailabilityCommandIsNotConstructed)
}

func (c RemoveCrewAvailabilityCommand) CrewMemberID() kernel.UUID   { return c.crewMemberID }
func (c RemoveCrewAvailabilityCommand) TenantID() kernel.UUID       { return c.tenantID }
func (c RemoveCrewAvailabilityCommand) AvailabilityID() kernel.UUID { return c.availabilityID }
