package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeclareCrewAvailabilityCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeclareCrewAvailabilityCommandIsNotConstructed = errors.New(
	"DeclareCrewAvailabilityCommand must be created via NewDeclareCrewAvailabilityCommand constructor",
)

// DeclareCrewAvailabilityCommand represents a request to declare an
// availability or blackout window for a crew member.
type DeclareCrewAvailabilityCommand struct { //nolint:recvcheck //using for validation
	crewMemberID kernel.UUID
	tenantID     kernel.UUID
	window       kernel.TimeWindow
	kind         crew.AvailabilityKind

	guard guard.ConstructorGuard
}

// NewDeclareCrewAvailabilityCommand creates a command to declare an availability window.
func NewDeclareCrewAvailabilityCommand(
	crewMemberID, tenantID kernel.UUID,
	start, end time.Time,
	kind crew.AvailabilityKind,
) (DeclareCrewAvailabilityCommand, error) {
	cmd := DeclareCrewAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(crewMemberID.Validate(), tenantID.Validate(), kind.Validate()); err != nil {
		return DeclareCrewAvailabilityCommand{}, err
	}

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return DeclareCrewAvailabilityCommand{}, err
	}

	cmd.crewMemberID = crewMemberID
	cmd.tenantID = tenantID
	cmd.window = window
	cmd.kind = kind
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclareCrewAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrDeclareCrewAvailabilityCommandIsNotConstructed)
}

func (c DeclareCrewAvailabilityCommand) CrewMemberID() kernel.UUID    { return c.crewMemberID }
func (c DeclareCrewAvailabilityCommand) TenantID() kernel.UUID        { return c.tenantID }
func (c DeclareCrewAvailabilityCommand) Window() kernel.TimeWindow    { return c.window }
func (c DeclareCrewAvailabilityCommand) Kind() crew.AvailabilityKind  { return c.kind }
