package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeleteTriggerCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeleteTriggerCommandIsNotConstructed = errors.New(
	"DeleteTriggerCommand must be created via NewDeleteTriggerCommand constructor",
)

// DeleteTriggerCommand represents a request to permanently remove an
// automation trigger. Unlike jobs, triggers carry no history worth keeping.
type DeleteTriggerCommand struct { //nolint:recvcheck //using for validation
	triggerID kernel.UUID
	tenantID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTriggerCommand creates a command to delete a trigger.
func NewDeleteTriggerCommand(triggerID, tenantID kernel.UUID) (DeleteTriggerCommand, error) {
	cmd := DeleteTriggerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(triggerID.Validate(), tenantID.Validate()); err != nil {
		return DeleteTriggerCommand{}, err
	}

	cmd.triggerID = triggerID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTriggerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTriggerCommandIsNotConstructed)
}

func (c DeleteTriggerCommand) TriggerID() kernel.UUID { return c.triggerID }
func (c DeleteTriggerCommand) TenantID() kernel.UUID  { return c.tenantID }
