package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrRemoveDependencyCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrRemoveDependencyCommandIsNotConstructed = errors.New(
	"RemoveDependencyCommand must be created via NewRemoveDependencyCommand constructor",
)

// RemoveDependencyCommand represents a request to withdraw a dependency edge.
type RemoveDependencyCommand struct { //nolint:recvcheck //using for validation
	tenantID       kernel.UUID
	dependentID    kernel.UUID
	prerequisiteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDependencyCommand creates a command to remove a dependency edge.
func NewRemoveDependencyCommand(tenantID, dependentID, prerequisiteID kernel.UUID) (RemoveDependencyCommand, error) {
	cmd := RemoveDependencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantID.Validate(),
		dependentID.Validate(),
		prerequisiteID.Validate(),
	); err != nil {
		return RemoveDependencyCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.dependentID = dependentID
	cmd.prerequisiteID = prerequisiteID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDependencyCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDependencyCommandIsNotConstructed)
}

func (c RemoveDependencyCommand) TenantID() kernel.UUID       { return c.tenantID }
func (c RemoveDependencyCommand) DependentID() kernel.UUID    { return c.dependentID }
func (c RemoveDependencyCommand) PrerequisiteID() kernel.UUID { return c.prerequisiteID }
