package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrAddDependencyCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrAddDependencyCommandIsNotConstructed = errors.New(
	"AddDependencyCommand must be created via NewAddDependencyCommand constructor",
)

// AddDependencyCommand represents a request to declare that one job must be
// completed before another can be scheduled.
type AddDependencyCommand struct { //nolint:recvcheck //using for validation
	tenantID       kernel.UUID
	dependentID    kernel.UUID
	prerequisiteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddDependencyCommand creates a command to add a dependency edge.
func NewAddDependencyCommand(tenantID, dependentID, prerequisiteID kernel.UUID) (AddDependencyCommand, error) {
	cmd := AddDependencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		dependentID.Validate(),
		prerequisiteID.Validate(),
	); err != nil {
		return AddDependencyCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.dependentID = dependentID
	cmd.prerequisiteID = prerequisiteID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDependencyCommand) Validate() error {
	return c.guard.Validate(ErrAddDependencyCommandIsNotConstructed)
}

func (c AddDependencyCommand) TenantID() kernel.UUID       { return c.tenantID }
func (c AddDependencyCommand) DependentID() kernel.UUID    { return c.dependentID }
func (c AddDependencyCommand) PrerequisiteID() kernel.UUID { return c.prerequisiteID }
